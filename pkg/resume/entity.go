package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/prepai/pkg/llmjson"
)

// Points is a list of suggestions; a single string is accepted as one point.
type Points []string

func (p *Points) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = Points{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = Points{}
		} else {
			*p = Points{s}
		}
		return nil
	}
	var list []llmjson.Text
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	out := make(Points, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(string(item)); s != "" {
			out = append(out, s)
		}
	}
	*p = out
	return nil
}

type ATSAssessment struct {
	EstimatedScore llmjson.Text `json:"estimatedScore"`
	Explanation    llmjson.Text `json:"explanation"`
}

// Score returns the leading integer of EstimatedScore ("85/100" gives 85).
func (a ATSAssessment) Score() (int, bool) {
	s := strings.TrimSpace(string(a.EstimatedScore))
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// Analysis is what the model returns for a real resume.
type Analysis struct {
	ATSAssessment             ATSAssessment `json:"atsAssessment"`
	Strengths                 Points        `json:"strengths"`
	AreasForImprovement       Points        `json:"areasForImprovement"`
	ActionVerbSuggestions     Points        `json:"actionVerbSuggestions"`
	QuantificationSuggestions Points        `json:"quantificationSuggestions"`
}

// Review is a stored analysis. Guests receive one with a zero ID.
type Review struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	ResumeText string    `json:"-"`
	Analysis
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	Create(ctx context.Context, r Review) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Review, error)
	// LatestResumeText returns apperr.ErrNotFound when the user has no review.
	LatestResumeText(ctx context.Context, userID uuid.UUID) (string, error)
}
