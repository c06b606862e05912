package dto

import "time"

// CredentialsRequest is the payload for register, login and password update.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
