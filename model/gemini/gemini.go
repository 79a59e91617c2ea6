// Package gemini implements the model.Model interface over Google's Gemini
// generateContent API. The provider has no system-role concept, so a system
// message is folded into the turn sequence as a specially tagged user turn,
// and it reports no token accounting, so usage is synthesized by word count.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/saimedhP-gif/termchat/model"
)

// ProviderName is the display name recorded in transcripts.
const ProviderName = "Google"

// SupportedModels lists the identifiers this adapter accepts, in catalog order.
var SupportedModels = []string{"gemini-pro", "gemini-pro-vision", "gemini-1.5-flash"}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const placeholderText = "Please set a valid GEMINI_API_KEY in the .env file to use Gemini models."

const quotaMessage = "Your Gemini API key has exceeded its quota. Please check your " +
	"quota limits or use a different API key."

const invalidKeyMessage = "Invalid Gemini API key. Please check your GEMINI_API_KEY in the .env file."

// Options configure the Gemini adapter.
type Options struct {
	// APIKey overrides the GEMINI_API_KEY environment variable. Empty puts
	// the adapter into placeholder mode instead of failing.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// Model wraps the Gemini API behind model.Model. The HTTP client is the
// per-adapter session handle; one is constructed per instance and reused
// across turns.
type Model struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// New constructs an adapter for one of SupportedModels.
func New(name string, optFns ...func(o *Options)) (*Model, error) {
	if !supported(name) {
		return nil, &model.UnsupportedModelError{Name: name, Supported: SupportedModels}
	}
	opts := Options{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: defaultBaseURL,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Model{name: name, apiKey: opts.APIKey, baseURL: opts.BaseURL, client: client}, nil
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
	if m.apiKey == "" {
		return &model.Response{
			Text:  placeholderText,
			Usage: &model.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		}, nil
	}

	lastUser := lastUserMessage(messages)
	if lastUser == "" {
		return nil, model.NewAPIError(model.ErrorKindTransport, ProviderName,
			"Error communicating with Gemini: no user messages found in conversation history", nil)
	}

	reply, err := m.generate(ctx, buildContents(messages))
	if err != nil {
		return nil, err
	}

	// Gemini does not report token accounting; use whitespace word counts
	// of the latest input and the reply as the proxy.
	prompt := model.WordCount(lastUser)
	completion := model.WordCount(reply)
	return &model.Response{
		Text: reply,
		Usage: &model.TokenUsage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}, nil
}

// buildContents converts the generic sequence into Gemini contents. The
// system message becomes a "[System]" tagged user turn, and both user and
// assistant turns are replayed so the stateless call sees the full context.
func buildContents(messages []model.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: fmt.Sprintf("[System] %s", msg.Content)}},
			})
		case model.RoleUser:
			contents = append(contents, content{Role: "user", Parts: []part{{Text: msg.Content}}})
		case model.RoleAssistant:
			contents = append(contents, content{Role: "model", Parts: []part{{Text: msg.Content}}})
		}
	}
	return contents
}

func lastUserMessage(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// generate performs one generateContent call and extracts the reply text.
func (m *Model) generate(ctx context.Context, contents []content) (string, error) {
	body, err := json.Marshal(generateContentRequest{Contents: contents})
	if err != nil {
		return "", wrap(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", m.baseURL, m.name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", m.apiKey)

	httpResp, err := m.client.Do(req)
	if err != nil {
		return "", wrap(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", wrap(err)
	}

	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", wrap(fmt.Errorf("malformed response (%s): %w", httpResp.Status, err))
	}
	if resp.Error != nil {
		return "", classify(fmt.Sprintf("%s: %s", resp.Error.Status, resp.Error.Message))
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", classify(httpResp.Status)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", wrap(fmt.Errorf("empty response from Gemini API: %s", httpResp.Status))
	}

	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// classify maps API error text onto the shared taxonomy with remediation
// hints for rejected keys and quota exhaustion.
func classify(message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "api_key_invalid"), strings.Contains(lower, "invalid_api_key"),
		strings.Contains(lower, "api key not valid"):
		return model.NewAPIError(model.ErrorKindCredential, ProviderName, invalidKeyMessage, nil)
	case strings.Contains(lower, "quota_exceeded"), strings.Contains(lower, "quota exceeded"),
		strings.Contains(lower, "resource_exhausted"):
		return model.NewAPIError(model.ErrorKindQuota, ProviderName, quotaMessage, nil)
	default:
		return wrap(fmt.Errorf("%s", message))
	}
}

func wrap(err error) error {
	return model.NewAPIError(model.ErrorKindTransport, ProviderName,
		fmt.Sprintf("Error communicating with Gemini: %s", err), err)
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name, Provider: ProviderName}
}
