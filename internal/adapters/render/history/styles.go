package history

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	backstory lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	content   lipgloss.Style
	turn      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		backstory: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		content:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		turn:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
