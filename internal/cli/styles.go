package cli

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#EF4444")
	success = lipgloss.Color("#22C55E")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	totalStyle  = lipgloss.NewStyle().Bold(true)
)
