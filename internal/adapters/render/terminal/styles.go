package terminal

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	column  lipgloss.Style
	name    lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
	empty   lipgloss.Style
	barFill lipgloss.Style
	barRest lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
		barFill: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barRest: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
