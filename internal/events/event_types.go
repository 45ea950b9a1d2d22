package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdminActionRecorded EventType = "admin_action_recorded"
	EventUserDeleted         EventType = "user_deleted"
)

// Event represents a domain event emitted after request handling.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AdminActionPayload records a privileged mutating action for the audit
// trail. ProductID is the resource the action targeted, when known.
type AdminActionPayload struct {
	Action    string `json:"action"`
	ActorID   int64  `json:"actor_id"`
	ProductID *int64 `json:"product_id,omitempty"`
}

// UserDeletedPayload notes an account removal.
type UserDeletedPayload struct {
	UserID int64 `json:"user_id"`
}
