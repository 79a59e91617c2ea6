package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saimedhP-gif/termchat/model"
)

// Command is one slash command: its primary name, help metadata and the
// handler bound at construction.
type Command struct {
	Name        string
	Usage       string
	Description string
	Handler     func(args string) error
}

// registerCommands builds the complete dispatch table. Every handler is
// bound before the first prompt is shown.
func (c *CLI) registerCommands() {
	for _, cmd := range []*Command{
		{Name: "/help", Usage: "/help", Description: "Show this help message", Handler: c.cmdHelp},
		{Name: "/exit", Usage: "/exit", Description: "Exit the application", Handler: c.cmdExit},
		{Name: "/quit", Usage: "/quit", Description: "Exit the application", Handler: c.cmdExit},
		{Name: "/clear", Usage: "/clear", Description: "Clear the conversation history", Handler: c.cmdClear},
		{Name: "/save", Usage: "/save <filename>", Description: "Save the conversation to a file", Handler: c.cmdSave},
		{Name: "/load", Usage: "/load", Description: "Load a saved conversation", Handler: c.cmdLoad},
		{Name: "/model", Usage: "/model <model_name>", Description: "Change the AI model", Handler: c.cmdModel},
		{Name: "/models", Usage: "/models", Description: "List available AI models", Handler: c.cmdModels},
		{Name: "/system", Usage: "/system <message>", Description: "Set a system message", Handler: c.cmdSystem},
		{Name: "/tokens", Usage: "/tokens", Description: "Show token usage statistics", Handler: c.cmdTokens},
		{Name: "/history", Usage: "/history", Description: "Show conversation history", Handler: c.cmdHistory},
	} {
		c.commands[cmd.Name] = cmd
		c.order = append(c.order, cmd.Name)
	}
}

// Commands returns the registered command names in declaration order.
func (c *CLI) Commands() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *CLI) cmdHelp(string) error {
	fmt.Fprintln(c.out, headerStyle.Render("Available Commands:"))
	for _, name := range c.order {
		cmd := c.commands[name]
		fmt.Fprintf(c.out, "  %-22s %s\n", commandStyle.Render(cmd.Usage), cmd.Description)
	}
	return nil
}

func (c *CLI) cmdExit(string) error {
	c.quit = true
	c.printInfo("Goodbye!")
	return nil
}

func (c *CLI) cmdClear(string) error {
	c.engine.ClearHistory()
	c.printInfo("Conversation history cleared")
	return nil
}

func (c *CLI) cmdSave(args string) error {
	path, err := c.store.Save(c.engine.Snapshot(), args)
	if err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	c.printInfo(fmt.Sprintf("Conversation saved to %s", path))
	return nil
}

// cmdLoad lists saved transcripts and loads the one the user picks. The
// live session is only touched after a confirmed, successful read.
func (c *CLI) cmdLoad(string) error {
	files, err := c.store.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		c.printInfo("No saved conversations found")
		return nil
	}

	fmt.Fprintln(c.out, headerStyle.Render("Available conversations:"))
	for i, name := range files {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, name)
	}

	choice, err := c.line.Prompt("Enter the number of the conversation to load (or 'cancel'): ")
	if err != nil || strings.EqualFold(strings.TrimSpace(choice), "cancel") {
		c.printInfo("Conversation loading cancelled")
		return nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || index < 1 || index > len(files) {
		c.printInfo("Conversation loading cancelled")
		return nil
	}
	name := files[index-1]

	c.printTranscriptInfo(name)
	confirm, err := c.line.Prompt("Load this conversation? [y/N]: ")
	if err != nil || !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		c.printInfo("Conversation loading cancelled")
		return nil
	}
	return c.LoadTranscript(name)
}

// LoadTranscript reads a transcript by name or path and applies it to the
// live session. On any failure the session stays as it was.
func (c *CLI) LoadTranscript(name string) error {
	t, err := c.store.Load(name)
	if err != nil {
		return fmt.Errorf("error loading conversation: %w", err)
	}
	if err := c.engine.RestoreTranscript(t); err != nil {
		return fmt.Errorf("error loading conversation: %w", err)
	}
	c.printInfo(fmt.Sprintf("Loaded conversation from %s", c.store.Path(name)))
	return nil
}

func (c *CLI) printTranscriptInfo(name string) {
	info, err := c.store.Info(name)
	if err != nil {
		c.printError(fmt.Sprintf("error reading conversation: %s", err))
		return
	}
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("Conversation: %s", info.File)))
	fmt.Fprintf(c.out, "  Timestamp: %s\n", info.Timestamp)
	fmt.Fprintf(c.out, "  Model: %s (%s)\n", info.Model, info.Provider)
	fmt.Fprintf(c.out, "  Messages: %d\n", info.Messages)
	fmt.Fprintf(c.out, "  Total Tokens: %d\n", info.TotalTokens)
}

func (c *CLI) cmdModel(args string) error {
	if args == "" {
		c.printInfo(fmt.Sprintf("Current model: %s (%s)", c.engine.ModelName(), c.engine.Provider()))
		return nil
	}
	if err := c.engine.SetModel(args); err != nil {
		return err
	}
	c.printInfo(fmt.Sprintf("Model changed to %s (%s)", args, c.engine.Provider()))
	return nil
}

func (c *CLI) cmdModels(string) error {
	fmt.Fprintln(c.out, headerStyle.Render("Available Models:"))
	for _, p := range c.registry.Catalog() {
		fmt.Fprintf(c.out, "\n%s\n", headerStyle.Render(p.Name+":"))
		for _, name := range p.Models {
			fmt.Fprintf(c.out, "  - %s\n", name)
		}
	}
	return nil
}

func (c *CLI) cmdSystem(args string) error {
	c.engine.SetSystemMessage(args)
	c.printInfo("System message updated")
	return nil
}

func (c *CLI) cmdTokens(string) error {
	usage := c.engine.TokenUsage()
	fmt.Fprintln(c.out, headerStyle.Render("Token Usage:"))
	fmt.Fprintf(c.out, "  Prompt tokens: %d\n", usage.PromptTokens)
	fmt.Fprintf(c.out, "  Completion tokens: %d\n", usage.CompletionTokens)
	fmt.Fprintf(c.out, "  Total tokens: %d\n", usage.TotalTokens)
	return nil
}

func (c *CLI) cmdHistory(string) error {
	history := c.engine.History()
	if len(history) == 0 {
		c.printInfo("No conversation history")
		return nil
	}
	fmt.Fprintln(c.out, headerStyle.Render("Conversation History:"))
	for _, msg := range history {
		var label string
		switch msg.Role {
		case model.RoleSystem:
			label = systemLabelStyle.Render("System:")
		case model.RoleUser:
			label = userLabelStyle.Render("You:")
		case model.RoleAssistant:
			label = assistantLabelStyle.Render("AI:")
		}
		fmt.Fprintf(c.out, "\n%s %s\n", label, msg.Content)
	}
	return nil
}
