package domain

import "time"

// Cart holds a user's pending purchases. One cart per user.
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

// CartItem is a product+variant line in a cart.
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	VariantID int64
	Quantity  int
}

// CartEntry is a cart item joined with its product and variant detail.
type CartEntry struct {
	Item    CartItem
	Product Product
	Variant Variant
}
