package desk

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	selected lipgloss.Style
	faint    lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	help     lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
	total    lipgloss.Style
}

func defaultStyles() styles {
	border := lipgloss.RoundedBorder()

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).MarginBottom(1),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		pane:     lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		focused:  lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		warning:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("220")).Padding(1, 2),
		error:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("196")).Padding(1, 2),
		total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
	}
}
