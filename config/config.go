// Package config loads and saves the tool's flat JSON configuration.
// Unknown keys are ignored on load; a missing or unparsable file falls back
// to built-in defaults and is never fatal.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/saimedhP-gif/termchat/logging"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "config.json"

// Config holds the recognized settings.
type Config struct {
	DefaultModel         string `json:"default_model"`
	DefaultSystemMessage string `json:"default_system_message"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultModel:         "gpt-3.5-turbo",
		DefaultSystemMessage: "You are a helpful AI assistant.",
	}
}

// Load reads the configuration from path, layering recognized keys over the
// defaults. Any read or parse failure is logged and the defaults returned.
func Load(path string, logger logging.Logger) Config {
	cfg := Default()
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("error loading configuration", "path", path, "error", err)
		}
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn("error loading configuration", "path", path, "error", err)
		return Default()
	}
	return cfg
}

// Save writes the configuration to path as an indented JSON document.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}
