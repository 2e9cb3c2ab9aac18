package models

// RegisterRequest represents the request body for user registration.
// Field checks live in the auth service so every caller gets the same errors.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
