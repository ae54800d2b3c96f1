package tui

import "github.com/charmbracelet/lipgloss"

// Pane and help styles. Card and outcome styles come from display.Styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 1).
			Bold(true)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	ActivePaneStyle = PaneStyle.
			BorderForeground(lipgloss.Color("#04B575"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	DealingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Italic(true)
)
