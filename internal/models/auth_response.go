package models

import "time"

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message   string     `json:"message"`
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email"`
	Token     string     `json:"token,omitempty"` // JWT token
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine readable kind, e.g. EMAIL_EXISTS
	Message string `json:"message"` // Human readable, never carries driver text
}
