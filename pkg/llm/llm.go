// Package llm defines the provider-neutral port the pipelines talk to.
package llm

import (
	"context"
	"errors"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    Role
	Content string
}

// ErrEmptyReply is returned when the provider answers with no content.
var ErrEmptyReply = errors.New("llm returned an empty reply")

// ChatModel hides the concrete provider so services can be tested with fakes.
type ChatModel interface {
	// Ask sends a single-shot instruction.
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Chat sends a system preamble followed by a multi-turn history.
	Chat(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
