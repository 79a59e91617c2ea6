// Package openai implements the model.Model interface over the OpenAI Chat
// Completions API using the official client. The message sequence is sent
// verbatim (role-tagged) in a single call; reply text and provider-reported
// usage are extracted directly.
//
// When no usable OPENAI_API_KEY is configured the adapter degrades to a
// deterministic placeholder response with a fixed synthetic usage tuple so
// the rest of the system can be exercised without live credentials.
package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/saimedhP-gif/termchat/model"
)

// ProviderName is the display name recorded in transcripts.
const ProviderName = "OpenAI"

// SupportedModels lists the identifiers this adapter accepts, in catalog order.
var SupportedModels = []string{"gpt-3.5-turbo", "gpt-4", "gpt-4-turbo"}

const placeholderText = "This is a mock response. Please set a valid OPENAI_API_KEY " +
	"in the .env file to get actual AI responses."

const quotaMessage = "Your OpenAI API key has exceeded its quota. Please check your " +
	"billing details at https://platform.openai.com/account/billing or use a different API key."

// Options configure the OpenAI adapter. Fields mirror a minimal subset of
// Chat Completion parameters; extend via functional options.
type Options struct {
	Temperature float64
	MaxTokens   int64
	// APIKey overrides the OPENAI_API_KEY environment variable. Values that
	// are empty or one of the well-known placeholder keys put the adapter
	// into placeholder mode instead of failing.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
}

// Model wraps the OpenAI Chat Completions API behind model.Model.
type Model struct {
	name   string
	client openai.Client
	opts   Options
	live   bool
}

// New constructs an adapter for one of SupportedModels. The client is built
// once here and owned by the adapter; there is no ambient global state.
func New(name string, optFns ...func(o *Options)) (*Model, error) {
	if !supported(name) {
		return nil, &model.UnsupportedModelError{Name: name, Supported: SupportedModels}
	}
	opts := Options{
		Temperature: 0.7,
		MaxTokens:   4096,
		APIKey:      os.Getenv("OPENAI_API_KEY"),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	m := &Model{name: name, opts: opts, live: usableKey(opts.APIKey)}
	if m.live {
		clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
		if opts.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
		}
		m.client = openai.NewClient(clientOpts...)
	}
	return m, nil
}

func supported(name string) bool {
	for _, s := range SupportedModels {
		if s == name {
			return true
		}
	}
	return false
}

// usableKey reports whether the key can be sent to the API at all. The two
// sentinel values come from the shipped .env template.
func usableKey(key string) bool {
	return key != "" && key != "sk-placeholder" && key != "your_openai_api_key_here"
}

// GenerateResponse implements model.Model.
func (m *Model) GenerateResponse(ctx context.Context, messages []model.Message) (*model.Response, error) {
	if !m.live {
		return &model.Response{
			Text:  placeholderText,
			Usage: &model.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		}, nil
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(m.name),
		Messages:    buildMessages(messages),
		Temperature: openai.Float(m.opts.Temperature),
		MaxTokens:   openai.Int(m.opts.MaxTokens),
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, model.NewAPIError(model.ErrorKindTransport, ProviderName,
			"Error communicating with OpenAI: no choices returned", nil)
	}

	return &model.Response{
		Text: resp.Choices[0].Message.Content,
		Usage: &model.TokenUsage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// buildMessages converts the generic sequence into SDK message params,
// preserving order and roles.
func buildMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case model.RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case model.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		}
	}
	return out
}

// classify maps SDK failures onto the shared error taxonomy. Quota
// exhaustion gets a remediation hint; everything else wraps the cause.
func classify(err error) error {
	if strings.Contains(err.Error(), "insufficient_quota") {
		return model.NewAPIError(model.ErrorKindQuota, ProviderName, quotaMessage, err)
	}
	return model.NewAPIError(model.ErrorKindTransport, ProviderName,
		fmt.Sprintf("Error communicating with OpenAI: %s", err), err)
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name, Provider: ProviderName}
}
