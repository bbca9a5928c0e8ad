package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by Login for any username/password
	// mismatch. It never says which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned by Authenticate for a token that is
	// malformed, expired, wrongly signed or not issued to the admin.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the referenced submission does not exist.
	ErrNotFound = errors.New("submission not found")
)

// ValidationError reports client input that breaks a rule. Details holds the
// itemized messages for contact submissions and is empty otherwise.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}
