package domain

import "time"

// AuditLog is an immutable record of a privileged mutating action.
// Action is "<METHOD> <path>"; ProductID is set when the action targeted a
// specific product.
type AuditLog struct {
	ID        int64
	Action    string
	ActorID   int64
	ProductID *int64
	CreatedAt time.Time
}
