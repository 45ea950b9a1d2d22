package domain

import "time"

// User is the domain model for shop accounts; admins share the same table
// with an elevated role.
type User struct {
	ID              int64
	Email           string
	PasswordHash    string
	Role            Role
	PrivacyAccepted bool
	CreatedAt       time.Time
}
