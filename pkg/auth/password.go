package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single configured admin identity.
type AdminCredentials struct {
	username string
	hash     []byte
}

// NewAdminCredentials validates the stored bcrypt hash up front so a bad
// ADMIN_PASSWORD_HASH fails at startup rather than on first login.
func NewAdminCredentials(username, passwordHash string) (*AdminCredentials, error) {
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, err
	}
	return &AdminCredentials{username: username, hash: []byte(passwordHash)}, nil
}

// IsAdmin reports whether username is the admin username, in constant time.
func (c *AdminCredentials) IsAdmin(username string) bool {
	return subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
}

// Verify reports whether username and password match the admin identity.
// The bcrypt comparison runs even when the username is wrong so both
// failures take the same time.
func (c *AdminCredentials) Verify(username, password string) bool {
	userOK := c.IsAdmin(username)
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
