// Package anthropic implements the model.Model interface over the Anthropic
// Messages API using the official client. The provider keeps system context
// outside the message list, so a system message is lifted into the
// top-level System parameter rather than sent as a turn.
package anthropic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/saimedhP-gif/termchat/model"
)

// ProviderName is the display name recorded in transcripts.
const ProviderName = "Anthropic"

// SupportedModels lists the identifiers this adapter accepts, in catalog order.
var SupportedModels = []string{
	"claude-3-5-sonnet-latest",
	"claude-3-5-haiku-latest",
	"claude-3-opus-latest",
}

const placeholderText = "Please set a valid ANTHROPIC_API_KEY in the .env file to use Claude models."

const quotaMessage = "Your Anthropic API key has exceeded its quota. Please check your " +
	"plan and billing details at https://console.anthropic.com or use a different API key."

// Options configure the Anthropic adapter.
type Options struct {
	Temperature float64
	MaxTokens   int64
	// APIKey overrides the ANTHROPIC_API_KEY environment variable. Empty
	// puts the adapter into placeholder mode instead of failing.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
}

// Model wraps the Anthropic Messages API behind model.Model.
type Model struct {
	name   string
	client anthropic.Client
	opts   Options
	live   bool
}

// New constructs an adapter for one of SupportedModels. The client is built
// once here and owned by the adapter.
func New(name string, optFns ...func(o *Options)) (*Model, error) {
	if !supported(name) {
		return nil, &model.UnsupportedModelError{Name: name, Supported: SupportedModels}
	}
	opts := Options{
		Temperature: 0.7,
		MaxTokens:   4096,
		APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	m := &Model{name: name, opts: opts, live: opts.APIKey != ""}
	if m.live {
		clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
		if opts.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
		}
		m.client = anthropic.NewClient(clientOpts...)
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

// GenerateResponse implements model.Model.
func (m *Model) GenerateResponse(ctx context.Context, messages []model.Message) (*model.Response, error) {
	if !m.live {
		return &model.Response{
			Text:  placeholderText,
			Usage: &model.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		}, nil
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(m.name),
		Messages:    buildMessages(messages),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
	}
	if sys := systemMessage(messages); sys != "" {
		params.System = []anthropic.TextBlockParam{{Text: sys}}
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	prompt := int(resp.Usage.InputTokens)
	completion := int(resp.Usage.OutputTokens)
	return &model.Response{
		Text: text.String(),
		Usage: &model.TokenUsage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}, nil
}

// buildMessages converts user and assistant turns into SDK message params.
// A system turn is handled by systemMessage and skipped here.
func buildMessages(messages []model.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case model.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return out
}

func systemMessage(messages []model.Message) string {
	for _, msg := range messages {
		if msg.Role == model.RoleSystem {
			return msg.Content
		}
	}
	return ""
}

// classify maps SDK failures onto the shared error taxonomy.
func classify(err error) error {
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "credit balance"), strings.Contains(lower, "rate_limit_error"):
		return model.NewAPIError(model.ErrorKindQuota, ProviderName, quotaMessage, err)
	case strings.Contains(lower, "authentication_error"), strings.Contains(lower, "invalid x-api-key"):
		return model.NewAPIError(model.ErrorKindCredential, ProviderName,
			"Invalid Anthropic API key. Please check your ANTHROPIC_API_KEY in the .env file.", err)
	default:
		return model.NewAPIError(model.ErrorKindTransport, ProviderName,
			fmt.Sprintf("Error communicating with Anthropic: %s", err), err)
	}
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name, Provider: ProviderName}
}
