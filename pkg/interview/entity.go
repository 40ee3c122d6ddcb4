package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Session is a finished interview transcript.
type Session struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Messages      []Message `json:"messages"`
	TargetRole    string    `json:"targetRole,omitempty"`
	TargetCompany string    `json:"targetCompany,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Repository interface {
	Create(ctx context.Context, s Session) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Session, error)
}

// ResumeSource returns the text of the user's most recent resume review.
// It returns an error wrapping apperr.ErrNotFound when the user has none.
type ResumeSource interface {
	LatestResumeText(ctx context.Context, userID uuid.UUID) (string, error)
}
