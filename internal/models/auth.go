// Package models defines the request and response shapes exchanged with the
// pi_system backend. Response types are immutable value objects: decoded
// once, never mutated.
package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

// AuthResult is the response body of both auth operations. Every field is a
// pointer because the backend reuses this one shape for success and error
// bodies alike; on an error body only Message is usually present.
type AuthResult struct {
	UserID       *int64  `json:"userId"`
	Token        *string `json:"token"`
	RefreshToken *string `json:"refreshToken"`
	Email        *string `json:"email"`
	Name         *string `json:"name"`
	MobileNumber *string `json:"mobileNumber"`
	Message      *string `json:"message"`
}
