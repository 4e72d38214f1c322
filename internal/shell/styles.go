package shell

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt  lipgloss.Style
	heading lipgloss.Style
	err     lipgloss.Style
}

func newStyles() styles {
	return styles{
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
	}
}
