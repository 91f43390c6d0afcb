package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendColors_Endpoints(t *testing.T) {
	from, to := lipgloss.Color("#a78bfa"), lipgloss.Color("#f1a208")
	colors := blendColors(5, from, to)
	require.Len(t, colors, 5)

	first, err := colorful.Hex(colorToHex(colors[0]))
	require.NoError(t, err)
	last, err := colorful.Hex(colorToHex(colors[4]))
	require.NoError(t, err)

	want, _ := colorful.Hex(string(from))
	assert.Less(t, first.DistanceRgb(want), 0.02)
	want, _ = colorful.Hex(string(to))
	assert.Less(t, last.DistanceRgb(want), 0.02)
}

func TestBlendColors_ANSIFallback(t *testing.T) {
	colors := blendColors(1, lipgloss.Color("39"), lipgloss.Color("#ffffff"))
	require.Len(t, colors, 1)
}

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	assert.Empty(t, ApplyBoldGradient("", T().Primary, T().Secondary))
	out := ApplyBoldGradient("lrcsync 夜", T().Primary, T().Secondary)
	assert.Equal(t, "lrcsync 夜", ansi.Strip(out))
}
