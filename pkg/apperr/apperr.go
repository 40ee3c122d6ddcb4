// Package apperr holds the error taxonomy shared by use cases and the HTTP layer.
// Use cases wrap these sentinels with context; handlers map them to status codes.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream failure")
	ErrPersistence  = errors.New("persistence failure")
	ErrConflict     = errors.New("concurrent update conflict")
)

// Validation builds a user-facing validation error.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Persistence wraps a storage error so the HTTP layer can hide its details.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Unauthorized builds an authentication error with a client-safe reason.
func Unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
}

var clientFacing = []error{ErrValidation, ErrUnauthorized, ErrNotFound}

// Message returns the part of a client-facing error meant for the client.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range clientFacing {
		marker := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
