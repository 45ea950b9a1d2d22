package dto

// CreateRentalRequest payload. Dates are RFC 3339.
type CreateRentalRequest struct {
	ProductID int64  `json:"productId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// UpdateRentalRequest payload; absent fields stay unchanged.
type UpdateRentalRequest struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Status    *string `json:"status"`
}
