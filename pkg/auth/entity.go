package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account together with its activity streak.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	CurrentStreak  int
	LastActivityAt *time.Time
	CreatedAt      time.Time
}
