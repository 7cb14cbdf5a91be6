package cli

import "github.com/charmbracelet/lipgloss"

var (
	successColor = lipgloss.Color("#2DA44E")
	errorColor   = lipgloss.Color("#CF222E")
	dimColor     = lipgloss.Color("#6E7681")
	titleColor   = lipgloss.Color("#0969DA")

	// TitleStyle renders section headers in status output.
	TitleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	// SuccessStyle renders OK markers.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// ErrorStyle renders failure markers and top-level errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// DimStyle renders secondary detail such as URLs and counts.
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
