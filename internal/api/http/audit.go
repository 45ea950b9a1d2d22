package http

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/events"
)

// AuditRecorder emits an event for every privileged mutating request once
// its handler has finished. The event is consumed by the audit subscriber;
// whatever happens there cannot change the response, which is already built.
type AuditRecorder struct {
	dispatcher events.Dispatcher
}

// NewAuditRecorder constructs the middleware.
func NewAuditRecorder(dispatcher events.Dispatcher) *AuditRecorder {
	return &AuditRecorder{dispatcher: dispatcher}
}

// Handle records "<METHOD> <path>" for mutating requests made by an ADMIN or
// SUPERADMIN. Login endpoints are never recorded, so credentials-adjacent
// traffic stays out of the audit trail. If the response body of a creation
// call carries the new resource id, that id wins over a path-embedded one.
func (a *AuditRecorder) Handle(c *fiber.Ctx) error {
	action := c.Method() + " " + c.OriginalURL()
	loginAttempt := isLoginPath(c.Path())

	if err := c.Next(); err != nil {
		return err
	}

	if loginAttempt || !mutatingMethod(c.Method()) {
		return nil
	}
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || !principal.Role.IsAdmin() {
		return nil
	}
	if c.Response().StatusCode() >= fiber.StatusBadRequest {
		return nil
	}

	productID := extractResourceID(c.Response().Body())
	if productID == nil {
		if id, err := c.ParamsInt("productId"); err == nil {
			v := int64(id)
			productID = &v
		}
	}

	// detached from the request context: a client disconnect must not
	// cancel the audit write
	_ = a.dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAdminActionRecorded,
		Timestamp: time.Now(),
		Payload: events.AdminActionPayload{
			Action:    action,
			ActorID:   principal.SubjectID,
			ProductID: productID,
		},
	})
	return nil
}

func isLoginPath(path string) bool {
	return strings.HasPrefix(path, "/auth/login") || strings.HasPrefix(path, "/auth/admin/login")
}

func mutatingMethod(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}

// extractResourceID digs a numeric "id" out of a JSON response body, either
// at the top level or under the conventional "data" envelope.
func extractResourceID(body []byte) *int64 {
	if len(body) == 0 {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	if id, ok := numberField(payload, "id"); ok {
		return &id
	}
	if data, ok := payload["data"].(map[string]any); ok {
		if id, ok := numberField(data, "id"); ok {
			return &id
		}
	}
	return nil
}

func numberField(m map[string]any, key string) (int64, bool) {
	raw, ok := m[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(raw), true
}
