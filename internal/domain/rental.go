package domain

import "time"

// RentalStatus tracks the rental lifecycle.
type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// Rental books a product for a date range at the product's daily rate.
type Rental struct {
	ID         int64
	UserID     int64
	ProductID  int64
	StartDate  time.Time
	EndDate    time.Time
	Status     RentalStatus
	TotalPrice float64
	CreatedAt  time.Time
}
