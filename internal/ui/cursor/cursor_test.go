package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within view", 0, 1, 20, 10, 1, 0},
		{"up clamps at zero", 0, -3, 20, 10, 0, 0},
		{"down clamps at end", 18, 5, 20, 10, 19, 10},
		{"scrolls with margin", 5, 3, 20, 10, 8, 1},
		{"empty list is a no-op", 0, 1, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.pos = tt.start
			c.Move(tt.delta, tt.listLen, tt.height)
			assert.Equal(t, tt.wantPos, c.Pos())
			assert.Equal(t, tt.wantOffset, c.Offset())
		})
	}
}

func TestJump_ScrollsUp(t *testing.T) {
	c := New(2)
	c.Jump(19, 20, 10)
	assert.Equal(t, 10, c.Offset())

	c.Jump(3, 20, 10)
	assert.Equal(t, 3, c.Pos())
	assert.Equal(t, 1, c.Offset())
}

func TestEnsureVisible_SmallViewport(t *testing.T) {
	c := New(5)
	c.Jump(4, 10, 3)
	start, end := c.VisibleRange(10, 3)
	assert.LessOrEqual(t, start, 4)
	assert.Greater(t, end, 4)
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 5)
	c.ClampToBounds(4)
	assert.Equal(t, 3, c.Pos())
	assert.LessOrEqual(t, c.Offset(), 3)

	c.ClampToBounds(0)
	assert.Zero(t, c.Pos())
	assert.Zero(t, c.Offset())
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	start, end := c.VisibleRange(3, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	start, end = c.VisibleRange(0, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestHandleKey(t *testing.T) {
	c := New(0)
	assert.True(t, c.HandleKey("j", 5, 3))
	assert.Equal(t, 1, c.Pos())
	assert.True(t, c.HandleKey("G", 5, 3))
	assert.Equal(t, 4, c.Pos())
	assert.True(t, c.HandleKey("home", 5, 3))
	assert.Equal(t, 0, c.Pos())
	assert.False(t, c.HandleKey("x", 5, 3))
}
