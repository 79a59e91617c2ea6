package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saimedhP-gif/termchat/model"
)

func sampleMessages() []model.Message {
	return []model.Message{
		{Role: model.RoleSystem, Content: "context"},
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.json")
	usage := model.TokenUsage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}

	original := New("gpt-4", "OpenAI", usage, sampleMessages())
	require.NoError(t, original.Write(path))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, original.Model, loaded.Model)
	assert.Equal(t, original.Provider, loaded.Provider)
	assert.Equal(t, original.TokenUsage, loaded.TokenUsage)
	assert.Equal(t, original.Conversation, loaded.Conversation)
	assert.Equal(t, original.Timestamp, loaded.Timestamp)
}

func TestNewCopiesMessages(t *testing.T) {
	msgs := sampleMessages()
	tr := New("gpt-4", "OpenAI", model.TokenUsage{}, msgs)

	msgs[0].Content = "mutated"
	assert.Equal(t, "context", tr.Conversation[0].Content)
}

func TestReadMissingOptionalFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.json")
	doc := `{"model": "gpt-4", "provider": "OpenAI", "conversation": []}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", loaded.Timestamp)
	assert.Equal(t, model.TokenUsage{}, loaded.TokenUsage)
}

func TestReadMissingRequiredFields(t *testing.T) {
	dir := t.TempDir()

	noModel := filepath.Join(dir, "no_model.json")
	require.NoError(t, os.WriteFile(noModel, []byte(`{"conversation": []}`), 0o644))
	_, err := Read(noModel)
	assert.ErrorContains(t, err, "missing model identifier")

	noConv := filepath.Join(dir, "no_conv.json")
	require.NoError(t, os.WriteFile(noConv, []byte(`{"model": "gpt-4"}`), 0o644))
	_, err = Read(noConv)
	assert.ErrorContains(t, err, "missing conversation")
}

func TestReadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestStoreSaveDefaultFilename(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tr := New("gpt-4", "OpenAI", model.TokenUsage{}, sampleMessages())
	path, err := store.Save(tr, "")
	require.NoError(t, err)
	assert.Regexp(t, `conversation_\d{8}_\d{6}\.json$`, path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStoreSaveAppendsExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tr := New("gpt-4", "OpenAI", model.TokenUsage{}, sampleMessages())
	path, err := store.Save(tr, "my_chat")
	require.NoError(t, err)
	assert.Equal(t, "my_chat.json", filepath.Base(path))
}

func TestStoreListNewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tr := New("gpt-4", "OpenAI", model.TokenUsage{}, sampleMessages())
	for _, name := range []string{"conversation_20240101_000000", "conversation_20250101_000000"} {
		_, err := store.Save(tr, name)
		require.NoError(t, err)
	}

	files, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"conversation_20250101_000000.json",
		"conversation_20240101_000000.json",
	}, files)
}

func TestStoreInfo(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	usage := model.TokenUsage{PromptTokens: 5, CompletionTokens: 5, TotalTokens: 10}
	_, err = store.Save(New("gemini-pro", "Google", usage, sampleMessages()), "info_test")
	require.NoError(t, err)

	info, err := store.Info("info_test.json")
	require.NoError(t, err)
	assert.Equal(t, "info_test.json", info.File)
	assert.Equal(t, "gemini-pro", info.Model)
	assert.Equal(t, "Google", info.Provider)
	assert.Equal(t, 3, info.Messages)
	assert.Equal(t, 10, info.TotalTokens)
	assert.NotEqual(t, "Unknown", info.Timestamp)
}
