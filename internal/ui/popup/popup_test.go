package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOverlay_CentersBox(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	out := Overlay(base, "ab\ncd", 10, 5)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....ab....", lines[1])
	assert.Equal(t, "....cd....", lines[2])
	assert.Equal(t, "..........", lines[3])
}

func TestOverlay_PadsShortBase(t *testing.T) {
	out := Overlay("x", "box", 7, 3)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "  box  ", lines[1])
}

func TestSplice_WideRunes(t *testing.T) {
	out := splice("夜夜夜夜", "x", 1, 8)
	assert.Equal(t, 8, ansi.StringWidth(out))
	assert.Contains(t, out, "x")
}

func TestBox_FitsContent(t *testing.T) {
	box := Box("hello", 100, 40)
	assert.Contains(t, box, "hello")
	assert.Contains(t, box, "╭")
}
