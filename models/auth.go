package models

// LoginRequest model for the admin login endpoint
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed admin token
type LoginResponse struct {
	Token string `json:"token"`
}
