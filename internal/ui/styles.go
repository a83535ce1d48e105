package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	fasterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	slowerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	similarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")) // Yellow
)

// speedupStyle picks the colour for a speedup factor.
func speedupStyle(speedup float64) lipgloss.Style {
	switch {
	case speedup > 1.1:
		return fasterStyle
	case speedup < 0.9:
		return slowerStyle
	default:
		return similarStyle
	}
}
