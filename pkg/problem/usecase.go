// Package problem asks the model for a fresh practice problem.
package problem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/llm"
	"github.com/artem13815/prepai/pkg/llmjson"
	"github.com/artem13815/prepai/pkg/logger"
)

const maxTopicLength = 200

var ErrGenerationFailed = fmt.Errorf("%w: problem generation failed", apperr.ErrUpstream)

type UseCase interface {
	Generate(ctx context.Context, topic, difficulty string) (Problem, error)
}

type service struct {
	llm llm.ChatModel
	log *logger.Logger
}

func NewService(model llm.ChatModel, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &service{llm: model, log: log.With("service", "problem")}
}

const systemPrompt = "You are a JSON-only API endpoint that writes programming interview problems. " +
	"Your entire response must be a single raw JSON object with no markdown and no commentary."

func buildPrompt(topic string, d Difficulty) string {
	return fmt.Sprintf(`Generate a unique programming problem.
- Topic: %s
- Difficulty: %s

Return exactly this structure:
{
  "title": "Problem Title",
  "description": "Problem description with \n for new lines.",
  "examples": [{"input": "Example input", "output": "Example output", "explanation": "Optional explanation"}],
  "boilerplates": {
    "javascript": "function solve(args) {\n  // Your code here\n}",
    "python": "def solve(args):\n  # Your code here\n  pass",
    "java": "class Solution {\n  public ReturnType solve(args) {\n    // Your code here\n  }\n}",
    "cpp": "class Solution {\npublic:\n  ReturnType solve(args) {\n    // Your code here\n  }\n};"
  }
}
Name the functions and arguments in the boilerplates after the problem, e.g. convert(s, numRows) for Zigzag Conversion.`, topic, d)
}

func (s *service) Generate(ctx context.Context, topic, difficulty string) (Problem, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Problem{}, apperr.Validation("topic is required")
	}
	if utf8.RuneCountInString(topic) > maxTopicLength {
		return Problem{}, apperr.Validation("topic must be at most %d characters", maxTopicLength)
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return Problem{}, err
	}

	raw, err := s.llm.Ask(ctx, systemPrompt, buildPrompt(topic, d))
	if err != nil {
		s.log.Error("llm call failed", "topic", topic, "difficulty", d, "error", err)
		return Problem{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	var p Problem
	if err := llmjson.Decode(raw, &p); err != nil {
		s.log.Error("unparseable problem", "topic", topic, "error", err)
		return Problem{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Description) == "" {
		s.log.Error("incomplete problem", "topic", topic)
		return Problem{}, fmt.Errorf("%w: %w", ErrGenerationFailed, errors.New("missing title or description"))
	}
	if p.Examples == nil {
		p.Examples = []Example{}
	}
	return p, nil
}
