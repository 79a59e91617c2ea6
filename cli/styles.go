package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	// Section header style
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)

	// Command name style in help output
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	// Role label styles for history rendering
	systemLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3")).
				Bold(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("4")).
				Bold(true)
)
