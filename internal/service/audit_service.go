package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
)

// AuditService persists audit records emitted after privileged requests.
// Writes are best-effort: a failure is logged and swallowed, never surfaced
// to the request that triggered the event.
type AuditService struct {
	logs   repository.AuditLogRepository
	logger *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(logs repository.AuditLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{logs: logs, logger: logger}
}

// RegisterHandlers subscribes to events.
func (s *AuditService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventAdminActionRecorded, s.handleAdminAction)
	dispatcher.Subscribe(events.EventUserDeleted, s.handleUserDeleted)
}

func (s *AuditService) handleAdminAction(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AdminActionPayload)
	if !ok {
		return nil
	}

	record := &domain.AuditLog{
		Action:    payload.Action,
		ActorID:   payload.ActorID,
		ProductID: payload.ProductID,
	}
	if err := s.logs.Create(ctx, record); err != nil {
		s.logger.Error("audit log write failed",
			zap.String("action", payload.Action),
			zap.Int64("actor_id", payload.ActorID),
			zap.Error(err))
	}
	return nil
}

// handleUserDeleted leaves a log trace only; no row is written for an
// account that just exercised its right to erasure.
func (s *AuditService) handleUserDeleted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserDeletedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("account deleted", zap.Int64("user_id", payload.UserID))
	return nil
}

// List returns the most recent audit records.
func (s *AuditService) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.logs.List(ctx, limit)
}
