package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saimedhP-gif/termchat/logging"
	"github.com/saimedhP-gif/termchat/model"
	"github.com/saimedhP-gif/termchat/transcript"
)

// Engine owns one conversation: the ordered message log, the cumulative
// token-usage counters and the active model adapter. All mutation happens
// through its methods; a failed send leaves the state byte-for-byte
// identical to its pre-call value.
type Engine struct {
	id            string
	registry      *model.Registry
	model         model.Model
	modelName     string
	systemMessage string
	history       []model.Message
	usage         model.TokenUsage
	logger        logging.Logger
}

// Options configure a new Engine.
type Options struct {
	// Model is the initial model identifier.
	Model string
	// SystemMessage seeds the conversation context. Empty means none.
	SystemMessage string
	// Logger receives structured session events. Defaults to no-op.
	Logger logging.Logger
}

// New creates an engine with the given registry and options. The initial
// model identifier must resolve, otherwise construction fails with the
// registry's unsupported-model error.
func New(registry *model.Registry, optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{Logger: logging.NewNoOpLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}
	m, err := registry.Resolve(opts.Model)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		id:        uuid.NewString(),
		registry:  registry,
		model:     m,
		modelName: opts.Model,
		logger:    opts.Logger,
	}
	e.SetSystemMessage(opts.SystemMessage)
	e.logger.Info("session started", "session_id", e.id, "model", e.modelName)
	return e, nil
}

// ID returns the session identifier attached to this engine's log events.
func (e *Engine) ID() string { return e.id }

// SendMessage appends the user message, invokes the active model with the
// full sequence and, on success, merges the reported usage and appends the
// assistant reply. On failure the tentative user message is removed and the
// state reverts to its pre-call value.
func (e *Engine) SendMessage(ctx context.Context, text string) (string, error) {
	e.history = append(e.history, model.Message{Role: model.RoleUser, Content: text})

	resp, err := e.model.GenerateResponse(ctx, e.history)
	if err != nil {
		e.history = e.history[:len(e.history)-1]
		e.logger.Warn("model call failed", "session_id", e.id, "model", e.modelName, "error", err)
		return "", fmt.Errorf("error communicating with AI: %w", err)
	}

	if resp.Usage != nil {
		e.usage.Add(*resp.Usage)
	}
	e.history = append(e.history, model.Message{Role: model.RoleAssistant, Content: resp.Text})
	e.logger.Debug("turn completed", "session_id", e.id, "model", e.modelName,
		"total_tokens", e.usage.TotalTokens)
	return resp.Text, nil
}

// SetModel switches the active model. On failure the previous adapter stays
// in place and the unsupported-model error carries the full valid set.
func (e *Engine) SetModel(name string) error {
	m, err := e.registry.Resolve(name)
	if err != nil {
		return err
	}
	e.model = m
	e.modelName = name
	e.logger.Info("model switched", "session_id", e.id, "model", name)
	return nil
}

// SetSystemMessage replaces the system message. Any existing system turn is
// removed; a non-empty text is inserted at position 0. The configured value
// is tracked independently of the message sequence so ClearHistory can
// restore it.
func (e *Engine) SetSystemMessage(text string) {
	kept := e.history[:0]
	for _, msg := range e.history {
		if msg.Role != model.RoleSystem {
			kept = append(kept, msg)
		}
	}
	e.history = kept
	if text != "" {
		e.history = append([]model.Message{{Role: model.RoleSystem, Content: text}}, e.history...)
	}
	e.systemMessage = text
}

// ClearHistory forgets everything except the configured system context.
func (e *Engine) ClearHistory() {
	e.history = nil
	if e.systemMessage != "" {
		e.history = append(e.history, model.Message{Role: model.RoleSystem, Content: e.systemMessage})
	}
}

// History returns a copy of the message sequence.
func (e *Engine) History() []model.Message {
	out := make([]model.Message, len(e.history))
	copy(out, e.history)
	return out
}

// TokenUsage returns the cumulative usage counters.
func (e *Engine) TokenUsage() model.TokenUsage { return e.usage }

// ModelName returns the active model identifier.
func (e *Engine) ModelName() string { return e.modelName }

// Provider returns the active model's provider display name.
func (e *Engine) Provider() string { return e.model.Info().Provider }

// SystemMessage returns the configured system context, which may be empty.
func (e *Engine) SystemMessage() string { return e.systemMessage }

// Snapshot captures the current state as a transcript.
func (e *Engine) Snapshot() *transcript.Transcript {
	return transcript.New(e.modelName, e.Provider(), e.usage, e.history)
}

// RestoreTranscript overwrites the conversation with a loaded transcript:
// the recorded model is re-resolved through the registry, the message
// sequence is replaced verbatim (historical messages are trusted, not
// replayed) and the usage counters take the recorded snapshot. If the model
// no longer resolves the engine is left untouched and the error propagates.
func (e *Engine) RestoreTranscript(t *transcript.Transcript) error {
	m, err := e.registry.Resolve(t.Model)
	if err != nil {
		return err
	}
	e.model = m
	e.modelName = t.Model
	e.history = make([]model.Message, len(t.Conversation))
	copy(e.history, t.Conversation)
	e.usage = t.TokenUsage

	// The configured system context follows the loaded sequence so a later
	// ClearHistory keeps behaving consistently.
	e.systemMessage = ""
	if len(e.history) > 0 && e.history[0].Role == model.RoleSystem {
		e.systemMessage = e.history[0].Content
	}
	e.logger.Info("transcript restored", "session_id", e.id, "model", e.modelName,
		"messages", len(e.history))
	return nil
}
