package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"default_model": "gemini-pro", "default_system_message": "Be brief."}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path, nil)
	assert.Equal(t, "gemini-pro", cfg.DefaultModel)
	assert.Equal(t, "Be brief.", cfg.DefaultSystemMessage)
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"default_model": "gpt-4", "theme": "dark", "retries": 3}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path, nil)
	assert.Equal(t, "gpt-4", cfg.DefaultModel)
	assert.Equal(t, Default().DefaultSystemMessage, cfg.DefaultSystemMessage)
}

func TestLoadParseFailureFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	cfg := Load(path, nil)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Config{DefaultModel: "claude-3-opus-latest", DefaultSystemMessage: "You are terse."}
	require.NoError(t, cfg.Save(path))

	assert.Equal(t, cfg, Load(path, nil))
}
