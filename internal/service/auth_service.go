package service

import (
	"context"
	"time"
)

// LoginResult is what a successful admin login hands back.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles admin login and bearer token checks.
type AuthService interface {
	// Login verifies the admin credentials and issues a token. Any mismatch
	// returns ErrInvalidCredentials; blank fields return a *ValidationError.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Authenticate returns the admin username a token was issued to, or
	// ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (string, error)
}
