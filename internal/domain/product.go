package domain

import "time"

// Product is a catalog entry. PricePerDay is set only for rentable products.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	PricePerDay *float64
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant is a sellable variation of a product (size/color/stock).
type Variant struct {
	ID        int64
	ProductID int64
	Size      string
	Color     string
	Stock     int
	CreatedAt time.Time
}
