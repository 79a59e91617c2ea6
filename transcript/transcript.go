package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/saimedhP-gif/termchat/model"
)

// Transcript is the persisted, self-contained record of one conversation
// snapshot. One transcript maps to one file and is independent of every
// other transcript.
type Transcript struct {
	Timestamp    string           `json:"timestamp"`
	Model        string           `json:"model"`
	Provider     string           `json:"provider"`
	TokenUsage   model.TokenUsage `json:"token_usage"`
	Conversation []model.Message  `json:"conversation"`
}

// New captures a snapshot of the given conversation state. The timestamp is
// taken from the local clock at serialization time, and the message sequence
// is copied by value so later mutation of the live state cannot leak in.
func New(modelName, provider string, usage model.TokenUsage, messages []model.Message) *Transcript {
	msgs := make([]model.Message, len(messages))
	copy(msgs, messages)
	return &Transcript{
		Timestamp:    time.Now().Format(time.RFC3339),
		Model:        modelName,
		Provider:     provider,
		TokenUsage:   usage,
		Conversation: msgs,
	}
}

// Write encodes the transcript as an indented UTF-8 JSON document and writes
// it whole, overwriting any existing file at path.
func (t *Transcript) Write(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// Read decodes a transcript file. The model identifier and the conversation
// are required; timestamp and token_usage are optional and substituted with
// documented defaults ("Unknown" and zero usage).
func Read(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if t.Model == "" {
		return nil, fmt.Errorf("parse transcript %s: missing model identifier", path)
	}
	if t.Conversation == nil {
		return nil, fmt.Errorf("parse transcript %s: missing conversation", path)
	}
	if t.Timestamp == "" {
		t.Timestamp = "Unknown"
	}
	return &t, nil
}
