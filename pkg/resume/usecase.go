// Package resume reviews uploaded resumes with the model.
package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/llm"
	"github.com/artem13815/prepai/pkg/llmjson"
	"github.com/artem13815/prepai/pkg/logger"
)

const maxPromptChars = 12_000

var (
	ErrReviewFailed = fmt.Errorf("%w: resume review failed", apperr.ErrUpstream)
	// ErrNotAResume is returned when the model says the document is not a resume.
	ErrNotAResume = apperr.Validation("the uploaded document does not appear to be a resume")
)

type Upload struct {
	// UserID is uuid.Nil for guests; guest reviews are never stored.
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

type UseCase interface {
	Review(ctx context.Context, in Upload) (Review, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Review, error)
}

type service struct {
	llm     llm.ChatModel
	repo    Repository
	log     *logger.Logger
	extract func([]byte) (string, error)
	now     func() time.Time
}

func NewService(model llm.ChatModel, repo Repository, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &service{
		llm:     model,
		repo:    repo,
		log:     log.With("service", "resume"),
		extract: ExtractPDFText,
		now:     time.Now,
	}
}

const systemPrompt = "You are an expert career coach and ATS (applicant tracking system) specialist. " +
	"You are a JSON-only API endpoint: answer with a single raw JSON object, no markdown, no commentary."

func buildPrompt(text string) string {
	return fmt.Sprintf(`First decide whether the text between the markers is a resume or CV.
If it is NOT a resume, respond with exactly: {"error": "The uploaded document does not appear to be a resume."}

Otherwise review it and respond with this structure:
{
  "atsAssessment": {"estimatedScore": "a score out of 100", "explanation": "why"},
  "strengths": ["..."],
  "areasForImprovement": ["..."],
  "actionVerbSuggestions": ["weak phrase -> stronger action verb"],
  "quantificationSuggestions": ["where and how to add measurable results"]
}

<<<
%s
>>>`, text)
}

type modelReply struct {
	Error llmjson.Text `json:"error"`
	Analysis
}

func (s *service) Review(ctx context.Context, in Upload) (Review, error) {
	if err := CheckPDF(in.Filename, in.ContentType, in.Data); err != nil {
		return Review{}, err
	}
	text, err := s.extract(in.Data)
	if err != nil {
		return Review{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Review{}, apperr.Validation("no text could be extracted from the PDF")
	}
	log := s.log.With("guest", in.UserID == uuid.Nil, "chars", utf8.RuneCountInString(text))

	raw, err := s.llm.Ask(ctx, systemPrompt, buildPrompt(truncateRunes(text, maxPromptChars)))
	if err != nil {
		log.Error("llm call failed", "error", err)
		return Review{}, fmt.Errorf("%w: %w", ErrReviewFailed, err)
	}
	var reply modelReply
	if err := llmjson.Decode(raw, &reply); err != nil {
		log.Error("unparseable review", "error", err)
		return Review{}, fmt.Errorf("%w: %w", ErrReviewFailed, err)
	}
	if strings.TrimSpace(string(reply.Error)) != "" {
		log.Info("document rejected as non-resume")
		return Review{}, ErrNotAResume
	}
	if reply.ATSAssessment.EstimatedScore == "" && len(reply.Strengths) == 0 && len(reply.AreasForImprovement) == 0 {
		log.Error("empty review returned")
		return Review{}, fmt.Errorf("%w: %w", ErrReviewFailed, errors.New("empty analysis"))
	}

	review := Review{
		UserID:     in.UserID,
		ResumeText: text,
		Analysis:   normalize(reply.Analysis),
		CreatedAt:  s.now().UTC(),
	}
	if in.UserID == uuid.Nil {
		return review, nil
	}
	review.ID = uuid.New()
	if err := s.repo.Create(ctx, review); err != nil {
		log.Error("save review failed", "error", err)
		return Review{}, apperr.Persistence("save resume review", err)
	}
	log.Info("resume reviewed", "review_id", review.ID.String())
	return review, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Review, error) {
	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperr.Persistence("list resume reviews", err)
	}
	if items == nil {
		items = []Review{}
	}
	return items, nil
}

func normalize(a Analysis) Analysis {
	for _, p := range []*Points{&a.Strengths, &a.AreasForImprovement, &a.ActionVerbSuggestions, &a.QuantificationSuggestions} {
		if *p == nil {
			*p = Points{}
		}
	}
	return a
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
