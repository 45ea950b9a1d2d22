package dto

// AddCartItemRequest payload for adding one unit to the cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	VariantID int64 `json:"variantId"`
}
