package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/prepai/pkg/apperr"
)

var (
	ErrNotFound           = fmt.Errorf("user %w", apperr.ErrNotFound)
	ErrUserAlreadyExists  = apperr.Validation("user already exists")
	ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// TokenRevoker remembers logged out tokens until they would have expired.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}
