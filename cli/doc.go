// Package cli provides the interactive terminal frontend: a liner-based
// REPL with persistent input history, a slash-command dispatch table bound
// completely at startup, and lipgloss-styled rendering of replies, history,
// token usage and the model catalog. It consumes the engine, registry and
// transcript store; all conversation semantics live in those packages.
package cli
