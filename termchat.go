// Package termchat provides a high-level facade over the conversation
// engine, the provider registry and transcript persistence, enabling quick
// construction of an interactive chat session. Most applications interact
// with this package by:
//  1. Creating an App via New() (optionally overriding model, system
//     message, directories or logger)
//  2. Calling Run() to enter the interactive loop, or reaching into
//     App.Engine for programmatic use
//
// The facade delegates conversation semantics to engine.Engine while
// keeping setup concise. Defaults are safe for local use: missing
// credentials degrade providers to placeholder responses instead of
// failing.
package termchat

import (
	"context"

	"github.com/saimedhP-gif/termchat/cli"
	"github.com/saimedhP-gif/termchat/config"
	"github.com/saimedhP-gif/termchat/engine"
	"github.com/saimedhP-gif/termchat/logging"
	"github.com/saimedhP-gif/termchat/model"
	"github.com/saimedhP-gif/termchat/model/anthropic"
	"github.com/saimedhP-gif/termchat/model/gemini"
	"github.com/saimedhP-gif/termchat/model/openai"
	"github.com/saimedhP-gif/termchat/transcript"
)

// DefaultConversationDir is where transcripts are stored.
const DefaultConversationDir = "conversations"

// DefaultRegistry returns the registry over all built-in providers in
// declaration order. Adding a provider means adding a variant here and
// registering its catalog; callers never change.
func DefaultRegistry() *model.Registry {
	return model.NewRegistry(
		model.Provider{
			Name:   openai.ProviderName,
			Models: openai.SupportedModels,
			New: func(name string) (model.Model, error) {
				return openai.New(name)
			},
		},
		model.Provider{
			Name:   gemini.ProviderName,
			Models: gemini.SupportedModels,
			New: func(name string) (model.Model, error) {
				return gemini.New(name)
			},
		},
		model.Provider{
			Name:   anthropic.ProviderName,
			Models: anthropic.SupportedModels,
			New: func(name string) (model.Model, error) {
				return anthropic.New(name)
			},
		},
	)
}

// Options configure an App. Zero values fall back to the loaded config and
// built-in defaults.
type Options struct {
	// Model overrides the configured default model identifier.
	Model string
	// SystemMessage overrides the configured default system message.
	SystemMessage string
	// ConfigFile is the configuration path. Defaults to config.DefaultFile.
	ConfigFile string
	// ConversationDir is the transcript directory.
	ConversationDir string
	// HistoryFile persists REPL input history. Empty disables it.
	HistoryFile string
	// Logger defaults to no-op.
	Logger logging.Logger
}

// App aggregates the wired components of one chat session.
type App struct {
	Config   config.Config
	Registry *model.Registry
	Engine   *engine.Engine
	Store    *transcript.Store
	CLI      *cli.CLI
}

// New wires an App from options, config file and the default registry.
func New(optFns ...func(o *Options)) (*App, error) {
	opts := Options{
		ConfigFile:      config.DefaultFile,
		ConversationDir: DefaultConversationDir,
		Logger:          logging.NewNoOpLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := config.Load(opts.ConfigFile, opts.Logger)
	modelName := opts.Model
	if modelName == "" {
		modelName = cfg.DefaultModel
	}
	systemMessage := opts.SystemMessage
	if systemMessage == "" {
		systemMessage = cfg.DefaultSystemMessage
	}

	registry := DefaultRegistry()
	eng, err := engine.New(registry, func(o *engine.Options) {
		o.Model = modelName
		o.SystemMessage = systemMessage
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}
	store, err := transcript.NewStore(opts.ConversationDir)
	if err != nil {
		return nil, err
	}
	c := cli.New(eng, store, registry, func(o *cli.Options) {
		o.HistoryFile = opts.HistoryFile
		o.Logger = opts.Logger
	})

	return &App{Config: cfg, Registry: registry, Engine: eng, Store: store, CLI: c}, nil
}

// Run enters the interactive chat loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	return a.CLI.Run(ctx)
}
