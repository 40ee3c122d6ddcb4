// Package submission grades user code with the model and keeps the result.
package submission

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

const maxCodeLength = 50_000

var ErrEvaluationFailed = fmt.Errorf("%w: code evaluation failed", apperr.ErrUpstream)

type EvaluateInput struct {
	UserID   uuid.UUID
	Problem  ProblemSnapshot
	Code     string
	Language string
	Topic    string
}

type UseCase interface {
	Evaluate(ctx context.Context, in EvaluateInput) (Submission, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Submission, error)
}

type service struct {
	llm  llm.ChatModel
	repo Repository
	log  *logger.Logger
	now  func() time.Time
}

func NewService(model llm.ChatModel, repo Repository, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &service{llm: model, repo: repo, log: log.With("service", "submission"), now: time.Now}
}

const systemPrompt = "You are a JSON-only API endpoint for code evaluation. " +
	"Your entire response must be a single raw JSON object with no markdown and no commentary."

func buildPrompt(p ProblemSnapshot, lang Language, code string) string {
	return fmt.Sprintf(`Analyze the user's code for the given problem.

Problem:
Title: %s
Description: %s

User's code (%s):
`+"```"+`%s
%s
`+"```"+`

Respond with this structure:
{
  "correctness": "Does the code solve the problem? Any bugs or missed edge cases?",
  "timeComplexity": "Time complexity in Big O notation and why.",
  "spaceComplexity": "Space complexity in Big O notation and why.",
  "optimization": "Specific, actionable optimizations, or state that the solution is already optimal."
}`, p.Title, p.Description, lang, lang, code)
}

func (s *service) validate(in *EvaluateInput) (Language, error) {
	if in.UserID == uuid.Nil {
		return "", apperr.ErrUnauthorized
	}
	in.Problem.Title = strings.TrimSpace(in.Problem.Title)
	in.Problem.Description = strings.TrimSpace(in.Problem.Description)
	if in.Problem.Title == "" && in.Problem.Description == "" {
		return "", apperr.Validation("problem is required")
	}
	if strings.TrimSpace(in.Code) == "" {
		return "", apperr.Validation("code is required")
	}
	if utf8.RuneCountInString(in.Code) > maxCodeLength {
		return "", apperr.Validation("code must be at most %d characters", maxCodeLength)
	}
	in.Topic = strings.TrimSpace(in.Topic)
	if in.Topic == "" {
		in.Topic = DefaultTopic
	}
	return ParseLanguage(in.Language)
}

func (s *service) Evaluate(ctx context.Context, in EvaluateInput) (Submission, error) {
	lang, err := s.validate(&in)
	if err != nil {
		return Submission{}, err
	}
	log := s.log.With("user_id", in.UserID.String(), "language", string(lang))

	raw, err := s.llm.Ask(ctx, systemPrompt, buildPrompt(in.Problem, lang, in.Code))
	if err != nil {
		log.Error("llm call failed", "error", err)
		return Submission{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	var fb Feedback
	if err := llmjson.Decode(raw, &fb); err != nil {
		log.Error("unparseable feedback", "error", err)
		return Submission{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	if strings.TrimSpace(string(fb.Correctness)) == "" {
		log.Error("feedback without correctness")
		return Submission{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, errors.New("missing correctness"))
	}

	sub := Submission{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Problem:   in.Problem,
		Topic:     in.Topic,
		Language:  lang,
		Code:      in.Code,
		Feedback:  fb,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		log.Error("save submission failed", "error", err)
		return Submission{}, apperr.Persistence("save submission", err)
	}
	log.Info("submission evaluated", "submission_id", sub.ID.String())
	return sub, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Submission, error) {
	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperr.Persistence("list submissions", err)
	}
	if items == nil {
		items = []Submission{}
	}
	return items, nil
}
