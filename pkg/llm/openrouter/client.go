package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/prepai/pkg/llm"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "google/gemini-flash-1.5"
	maxErrorBody   = 2048
)

var ErrMissingAPIKey = errors.New("openrouter api key is empty")

// Client is an OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	AppTitle    string
	Referer     string
	Temperature float32
	httpDo      *http.Client
}

var _ llm.ChatModel = (*Client)(nil)

type Options struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	Timeout  time.Duration
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Client{
		APIKey:      opts.APIKey,
		BaseURL:     strings.TrimRight(opts.BaseURL, "/"),
		Model:       opts.Model,
		AppTitle:    opts.AppTitle,
		Referer:     opts.Referer,
		Temperature: 0.2,
		httpDo:      &http.Client{Timeout: opts.Timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Ask sends a single instruction under a system prompt.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.Chat(ctx, systemPrompt, []llm.Message{{Role: llm.RoleUser, Content: userPrompt}})
}

// Chat sends the system prompt followed by history and returns the first choice.
func (c *Client) Chat(ctx context.Context, systemPrompt string, history []llm.Message) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	msgs := make([]message, 0, len(history)+1)
	if systemPrompt != "" {
		msgs = append(msgs, message{Role: string(llm.RoleSystem), Content: systemPrompt})
	}
	for _, m := range history {
		msgs = append(msgs, message{Role: string(m.Role), Content: m.Content})
	}
	data, err := json.Marshal(chatCompletionsRequest{
		Model:       c.Model,
		Messages:    msgs,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}

	endpoint := c.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("openrouter http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	content := out.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", llm.ErrEmptyReply
	}
	return content, nil
}
