package service

import (
	"context"
	"fmt"
	"time"

	"github.com/orrya/backend/pkg/auth"
)

// CredentialVerifier checks a username/password pair against the admin identity.
type CredentialVerifier interface {
	Verify(username, password string) bool
	IsAdmin(username string) bool
}

// TokenIssuer issues and verifies admin tokens.
type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
	Verify(token string) (string, error)
}

type authServiceImpl struct {
	creds  CredentialVerifier
	tokens TokenIssuer
}

// NewAuthService wires the credential verifier and token service together.
func NewAuthService(creds CredentialVerifier, tokens TokenIssuer) AuthService {
	return &authServiceImpl{creds: creds, tokens: tokens}
}

var (
	_ CredentialVerifier = (*auth.AdminCredentials)(nil)
	_ TokenIssuer        = (*auth.TokenService)(nil)
)

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "Username and password required"}
	}
	if !s.creds.Verify(username, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.tokens.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}

func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (string, error) {
	username, err := s.tokens.Verify(token)
	if err != nil || !s.creds.IsAdmin(username) {
		return "", ErrUnauthorized
	}
	return username, nil
}
