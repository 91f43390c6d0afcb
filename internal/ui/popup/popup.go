// Package popup renders modal boxes centered over the editor view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/lrcsync/internal/ui/styles"
)

// MaxWidth caps the width of a bordered popup.
const MaxWidth = 80

// Box wraps content in a rounded border sized to fit it, within the screen.
func Box(content string, screenW, screenH int) string {
	width := min(lipgloss.Width(content)+6, MaxWidth, max(screenW-4, 10))
	height := min(lipgloss.Height(content)+4, max(screenH-4, 5))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)
}

// Overlay centers box over base. Base lines are padded to width and only the
// box's columns are replaced, so the view underneath stays visible around it.
func Overlay(base, box string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")

	top := max(0, (height-len(boxLines))/2)
	left := max(0, (width-lipgloss.Width(box))/2)

	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = splice(baseLines[row], line, left, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces the columns [col, col+width(over)) of line with over.
// ANSI sequences in line are kept intact on both sides.
func splice(line, over string, col, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	end := col + ansi.StringWidth(over)

	prefix := ansi.Cut(line, 0, col)
	// Cutting through a wide rune drops it; keep columns aligned.
	if w := ansi.StringWidth(prefix); w < col {
		prefix += strings.Repeat(" ", col-w)
	}
	suffix := ""
	if end < width {
		suffix = ansi.Cut(line, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
	}
	return prefix + over + suffix
}
