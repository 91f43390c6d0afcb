package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the editor.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - cursor line, active states
	Secondary lipgloss.Color // Gold/orange - timestamps

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgCursor lipgloss.Color // Selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color // Green - saved
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow/orange - untimed lines

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Current   lipgloss.Style // Line under the playback position
	Selected  lipgloss.Style // Selection background highlight
	Timestamp lipgloss.Style
	Untimed   lipgloss.Style // Placeholder for a missing timestamp
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Current: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(t.BgCursor),
		Timestamp: lipgloss.NewStyle().Foreground(t.Secondary),
		Untimed:   lipgloss.NewStyle().Foreground(t.FgSubtle).Italic(true),
		Success:   lipgloss.NewStyle().Foreground(t.Success),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
