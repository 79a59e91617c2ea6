package model

import (
	"context"
	"fmt"
	"strings"
)

// Role identifies the author of a conversation message. The set is closed:
// providers never see roles outside these three.
type Role string

const (
	// RoleSystem marks the single optional context-setting message.
	RoleSystem Role = "system"
	// RoleUser marks a message authored by the human operator.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by a model.
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. Ordering inside a conversation is
// significant and append-only except for explicit system-message replacement
// and explicit clear.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TokenUsage captures token usage statistics for a response or a session.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage sample. TotalTokens is recomputed from the
// prompt and completion counters rather than trusted from the provider.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens = u.PromptTokens + u.CompletionTokens
}

// Response is the normalized output of a single generation call. It is owned
// by the call that produced it; callers merge it into their state and drop it.
type Response struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "OpenAI", "Google", "Anthropic", ...
}

// Model is the capability interface every provider adapter implements.
// GenerateResponse receives the full ordered message sequence (including any
// system message) and returns a normalized response or a classified error.
type Model interface {
	GenerateResponse(ctx context.Context, messages []Message) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It answers with a canned response keyed by the latest user message, or a
// deterministic echo when no canned response is registered.
type MockModel struct {
	info      Info
	usage     TokenUsage
	err       error
	responses map[string]string
}

// NewMockModel constructs a MockModel reporting the given identity.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		usage:     TokenUsage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned reply for a user input.
func (m *MockModel) AddResponse(input, response string) { m.responses[input] = response }

// SetUsage overrides the usage tuple reported with every reply.
func (m *MockModel) SetUsage(usage TokenUsage) { m.usage = usage }

// Fail makes every subsequent GenerateResponse call return err.
func (m *MockModel) Fail(err error) { m.err = err }

// GenerateResponse implements Model.
func (m *MockModel) GenerateResponse(_ context.Context, messages []Message) (*Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	var input string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			input = messages[i].Content
			break
		}
	}
	if input == "" {
		return nil, fmt.Errorf("no user messages found in conversation history")
	}
	text := m.responses[input]
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", input)
	}
	usage := m.usage
	return &Response{Text: text, Usage: &usage}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }

// WordCount returns the whitespace-delimited word count of s. Providers that
// do not report token accounting use it as the token proxy.
func WordCount(s string) int { return len(strings.Fields(s)) }
