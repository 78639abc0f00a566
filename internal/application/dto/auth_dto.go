package dto

import "time"

// TokenResponse salida de POST /api/v1/auth/token.
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
