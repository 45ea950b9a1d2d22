package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
)

func publishAdminAction(t *testing.T, dispatcher events.Dispatcher, payload events.AdminActionPayload) {
	t.Helper()
	err := dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-1",
		Type:      events.EventAdminActionRecorded,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		t.Fatalf("Publish error = %v", err)
	}
}

func TestAuditSubscriberPersistsAdminActions(t *testing.T) {
	repo := &fakeAuditLogRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(repo, zap.NewNop()).RegisterHandlers(dispatcher)

	productID := int64(42)
	publishAdminAction(t, dispatcher, events.AdminActionPayload{
		Action:    "POST /products",
		ActorID:   3,
		ProductID: &productID,
	})

	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want 1", len(repo.records))
	}
	record := repo.records[0]
	if record.Action != "POST /products" || record.ActorID != 3 {
		t.Errorf("record = %+v", record)
	}
	if record.ProductID == nil || *record.ProductID != 42 {
		t.Errorf("ProductID = %v, want 42", record.ProductID)
	}
}

// A repository failure is logged and swallowed; the publisher never sees it.
func TestAuditSubscriberSwallowsWriteFailure(t *testing.T) {
	repo := &fakeAuditLogRepo{
		createFn: func(_ context.Context, _ *domain.AuditLog) error {
			return errors.New("db down")
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(repo, zap.NewNop()).RegisterHandlers(dispatcher)

	publishAdminAction(t, dispatcher, events.AdminActionPayload{Action: "DELETE /products/5", ActorID: 3})
}

// Account deletion events leave a log line only, never a stored row.
func TestAuditSubscriberIgnoresUserDeletion(t *testing.T) {
	repo := &fakeAuditLogRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(repo, zap.NewNop()).RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-2",
		Type:      events.EventUserDeleted,
		Timestamp: time.Now(),
		Payload:   events.UserDeletedPayload{UserID: 9},
	})
	if err != nil {
		t.Fatalf("Publish error = %v", err)
	}
	if len(repo.records) != 0 {
		t.Errorf("records = %d, want 0", len(repo.records))
	}
}
