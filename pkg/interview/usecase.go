// Package interview runs the behavioral interview conversation.
package interview

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
	"github.com/artem13815/prepai/pkg/logger"
)

const (
	// CompletionMarker is emitted by the model when the interview is over.
	CompletionMarker = "[INTERVIEW_COMPLETE]"

	ResumeContextLimit = 4000
	maxMessages        = 100
	maxMessageLength   = 8000
	maxTargetLength    = 200
)

var ErrChatFailed = fmt.Errorf("%w: interview reply failed", apperr.ErrUpstream)

type ChatInput struct {
	// UserID is uuid.Nil for guests.
	UserID           uuid.UUID
	Messages         []Message
	TargetRole       string
	TargetCompany    string
	UseResumeContext bool
}

type Reply struct {
	Text      string
	Completed bool
	SessionID *uuid.UUID
}

type UseCase interface {
	Reply(ctx context.Context, in ChatInput) (Reply, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Session, error)
}

type service struct {
	llm     llm.ChatModel
	repo    Repository
	resumes ResumeSource
	log     *logger.Logger
	now     func() time.Time
}

func NewService(model llm.ChatModel, repo Repository, resumes ResumeSource, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &service{llm: model, repo: repo, resumes: resumes, log: log.With("service", "interview"), now: time.Now}
}

func validate(in *ChatInput) error {
	if len(in.Messages) == 0 {
		return apperr.Validation("messages are required")
	}
	if len(in.Messages) > maxMessages {
		return apperr.Validation("at most %d messages are allowed", maxMessages)
	}
	for i, m := range in.Messages {
		if m.Sender != SenderUser && m.Sender != SenderAI {
			return apperr.Validation("message %d: sender must be user or ai", i)
		}
		if strings.TrimSpace(m.Text) == "" {
			return apperr.Validation("message %d: text is required", i)
		}
		if utf8.RuneCountInString(m.Text) > maxMessageLength {
			return apperr.Validation("message %d: text must be at most %d characters", i, maxMessageLength)
		}
	}
	if in.Messages[len(in.Messages)-1].Sender != SenderUser {
		return apperr.Validation("last message must come from the user")
	}
	in.TargetRole = strings.TrimSpace(in.TargetRole)
	in.TargetCompany = strings.TrimSpace(in.TargetCompany)
	if utf8.RuneCountInString(in.TargetRole) > maxTargetLength || utf8.RuneCountInString(in.TargetCompany) > maxTargetLength {
		return apperr.Validation("target role and company must be at most %d characters", maxTargetLength)
	}
	return nil
}

func (s *service) Reply(ctx context.Context, in ChatInput) (Reply, error) {
	if err := validate(&in); err != nil {
		return Reply{}, err
	}
	guest := in.UserID == uuid.Nil
	log := s.log
	if !guest {
		log = log.With("user_id", in.UserID.String())
	}

	resumeText := ""
	if in.UseResumeContext && !guest && s.resumes != nil {
		resumeText = s.resumeContext(ctx, in.UserID, log)
	}

	history := make([]llm.Message, 0, len(in.Messages))
	for _, m := range in.Messages {
		role := llm.RoleUser
		if m.Sender == SenderAI {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Text})
	}

	raw, err := s.llm.Chat(ctx, systemPrompt(in.TargetRole, in.TargetCompany, resumeText), history)
	if err != nil {
		log.Error("llm call failed", "error", err)
		return Reply{}, fmt.Errorf("%w: %w", ErrChatFailed, err)
	}

	text, completed := stripMarker(raw)
	out := Reply{Text: text, Completed: completed}
	if !completed || guest {
		return out, nil
	}

	transcript := make([]Message, 0, len(in.Messages)+1)
	transcript = append(transcript, in.Messages...)
	transcript = append(transcript, Message{Sender: SenderAI, Text: text})
	sess := Session{
		ID:            uuid.New(),
		UserID:        in.UserID,
		Messages:      transcript,
		TargetRole:    in.TargetRole,
		TargetCompany: in.TargetCompany,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		log.Error("save chat session failed", "error", err)
		return Reply{}, apperr.Persistence("save chat session", err)
	}
	log.Info("interview completed", "session_id", sess.ID.String(), "messages", len(transcript))
	out.SessionID = &sess.ID
	return out, nil
}

// resumeContext never fails the request; a missing or unreadable resume just means no context.
func (s *service) resumeContext(ctx context.Context, userID uuid.UUID, log *logger.Logger) string {
	text, err := s.resumes.LatestResumeText(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.Warn("resume context unavailable", "error", err)
		}
		return ""
	}
	return truncateRunes(strings.TrimSpace(text), ResumeContextLimit)
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Session, error) {
	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperr.Persistence("list chat sessions", err)
	}
	if items == nil {
		items = []Session{}
	}
	return items, nil
}

func stripMarker(reply string) (string, bool) {
	if !strings.Contains(reply, CompletionMarker) {
		return reply, false
	}
	return strings.TrimSpace(strings.ReplaceAll(reply, CompletionMarker, "")), true
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
