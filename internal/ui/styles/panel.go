package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered style of the lines panel. The border is
// dimmed while a popup holds the focus.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
