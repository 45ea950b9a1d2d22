package dto

// CreateUserRequest payload for signup.
type CreateUserRequest struct {
	Email                 string `json:"email"`
	Password              string `json:"password"`
	AcceptedPrivacyPolicy bool   `json:"acceptedPrivacyPolicy"`
}

// LoginRequest payload for both login endpoints.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
