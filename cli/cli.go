package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/saimedhP-gif/termchat/engine"
	"github.com/saimedhP-gif/termchat/logging"
	"github.com/saimedhP-gif/termchat/model"
	"github.com/saimedhP-gif/termchat/transcript"
)

// CLI drives the interactive chat loop: it reads lines, dispatches slash
// commands through a table bound completely at construction, and forwards
// everything else to the engine as a user turn. A model or persistence
// failure prints one line and the loop continues; only /exit, /quit or EOF
// end the session.
type CLI struct {
	engine   *engine.Engine
	store    *transcript.Store
	registry *model.Registry
	logger   logging.Logger

	line        *liner.State
	historyFile string
	out         io.Writer

	commands map[string]*Command
	order    []string
	quit     bool
}

// Options configure the CLI.
type Options struct {
	// Out receives all rendered output. Defaults to os.Stdout.
	Out io.Writer
	// HistoryFile persists input history across sessions. Empty disables it.
	HistoryFile string
	// Logger receives structured events. Defaults to no-op.
	Logger logging.Logger
}

// New wires a CLI over an engine, a transcript store and the registry. The
// full command table is built here; no handler is patched in later.
func New(eng *engine.Engine, store *transcript.Store, registry *model.Registry, optFns ...func(o *Options)) *CLI {
	opts := Options{Out: os.Stdout, Logger: logging.NewNoOpLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}
	c := &CLI{
		engine:      eng,
		store:       store,
		registry:    registry,
		logger:      opts.Logger,
		historyFile: opts.HistoryFile,
		out:         opts.Out,
		commands:    make(map[string]*Command),
	}
	c.registerCommands()
	return c
}

// Run starts the REPL and blocks until the user exits.
func (c *CLI) Run(ctx context.Context) error {
	c.line = liner.NewLiner()
	c.line.SetCtrlCAborts(true)
	defer c.close()
	c.loadInputHistory()

	c.printWelcome()

	for !c.quit {
		input, err := c.line.Prompt(promptStyle.Render("You: "))
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			c.printInfo("Goodbye!")
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			c.Dispatch(input)
			continue
		}
		c.send(ctx, input)
	}
	return nil
}

// Dispatch parses "/command args" and executes the bound handler. Unknown
// commands print a hint instead of failing the loop.
func (c *CLI) Dispatch(input string) {
	name, args := splitCommand(input)
	cmd, ok := c.commands[name]
	if !ok {
		c.printError(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name))
		return
	}
	if err := cmd.Handler(args); err != nil {
		c.printError(err.Error())
	}
}

func splitCommand(input string) (name, args string) {
	parts := strings.SplitN(input, " ", 2)
	name = parts[0]
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return name, args
}

// send runs one user turn through the engine and renders the reply.
func (c *CLI) send(ctx context.Context, text string) {
	fmt.Fprintln(c.out, infoStyle.Render("Thinking..."))
	reply, err := c.engine.SendMessage(ctx, text)
	if err != nil {
		c.logger.Debug("turn failed", "error", err)
		c.printError(err.Error())
		return
	}
	fmt.Fprintf(c.out, "\n%s %s\n\n", assistantLabelStyle.Render("AI:"), reply)
}

func (c *CLI) close() {
	if c.historyFile != "" {
		if f, err := os.Create(c.historyFile); err == nil {
			c.line.WriteHistory(f)
			f.Close()
		}
	}
	c.line.Close()
}

func (c *CLI) loadInputHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

func (c *CLI) printWelcome() {
	fmt.Fprintln(c.out, welcomeStyle.Render(
		"termchat\nChat with AI language models directly from your terminal.\nType /help to see available commands."))
	fmt.Fprintln(c.out)
}

func (c *CLI) printInfo(msg string) {
	fmt.Fprintln(c.out, infoStyle.Render(msg))
}

func (c *CLI) printError(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render(msg))
}
