package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(secondaryColor).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	focusedInputStyle = inputStyle.
				BorderForeground(accentColor)

	// Send button
	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				Foreground(primaryColor).
				BorderForeground(primaryColor).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

const buttonLabel = "Send"
