// Package ui holds pieces shared by the editor's bubbletea components.
package ui

// Base provides size management for components. Embed it in a model to get
// SetSize, Width and Height.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
