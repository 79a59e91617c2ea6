// Command termchat starts an interactive chat session with a hosted
// language model from the terminal.
//
// Usage:
//
//	termchat [-model NAME] [-system MESSAGE] [-load FILE]
//
// Credentials are read from the environment (OPENAI_API_KEY,
// GEMINI_API_KEY, ANTHROPIC_API_KEY), with a .env file in the working
// directory loaded first if present. Missing credentials never abort the
// session; the affected provider answers with a placeholder response.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/saimedhP-gif/termchat"
	"github.com/saimedhP-gif/termchat/logging"
)

func main() {
	modelFlag := flag.String("model", "", "AI model to use")
	systemFlag := flag.String("system", "", "System message to set context")
	loadFlag := flag.String("load", "", "Load a conversation from a file")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	// Missing .env is the normal case; keys may come from the environment.
	_ = godotenv.Load()

	level := logging.LogLevelWarn
	if *verboseFlag {
		level = logging.LogLevelDebug
	}
	logger := logging.New(os.Stderr, level)

	app, err := termchat.New(func(o *termchat.Options) {
		o.Model = *modelFlag
		o.SystemMessage = *systemFlag
		o.HistoryFile = ".termchat_history"
		o.Logger = logger
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *loadFlag != "" {
		if err := app.CLI.LoadTranscript(*loadFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
