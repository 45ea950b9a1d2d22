package dto

// VariantRequest describes one variant in a product payload.
type VariantRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

// CreateProductRequest payload for new products.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	PricePerDay *float64         `json:"pricePerDay"`
	Variants    []VariantRequest `json:"variants"`
}

// UpdateProductRequest payload; absent fields stay unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PricePerDay *float64 `json:"pricePerDay"`
}

// UpdateVariantRequest payload; absent fields stay unchanged.
type UpdateVariantRequest struct {
	Size  *string `json:"size"`
	Color *string `json:"color"`
	Stock *int    `json:"stock"`
}
