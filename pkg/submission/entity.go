package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/llmjson"
)

type Language string

const (
	JavaScript Language = "javascript"
	Python     Language = "python"
	Java       Language = "java"
	Cpp        Language = "cpp"
)

const DefaultTopic = "General"

// ParseLanguage normalizes the editor's language id.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js":
		return JavaScript, nil
	case "python", "py":
		return Python, nil
	case "java":
		return Java, nil
	case "cpp", "c++":
		return Cpp, nil
	case "":
		return "", apperr.Validation("language is required")
	default:
		return "", apperr.Validation("language must be one of javascript, python, java, cpp")
	}
}

// ProblemSnapshot is the part of the problem kept with a submission.
type ProblemSnapshot struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Feedback struct {
	Correctness     llmjson.Text `json:"correctness"`
	TimeComplexity  llmjson.Text `json:"timeComplexity"`
	SpaceComplexity llmjson.Text `json:"spaceComplexity"`
	Optimization    llmjson.Text `json:"optimization"`
}

// Submission is immutable once stored.
type Submission struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Problem   ProblemSnapshot `json:"problem"`
	Topic     string          `json:"topic"`
	Language  Language        `json:"language"`
	Code      string          `json:"code"`
	Feedback  Feedback        `json:"feedback"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Repository interface {
	Create(ctx context.Context, s Submission) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Submission, error)
}
