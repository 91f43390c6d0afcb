package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time           { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(length time.Duration) (*Clock, *fakeTime) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(length)
	c.now = ft.now
	c.anchor = ft.now()
	return c, ft
}

func TestClock_Advances(t *testing.T) {
	c, ft := newTestClock(0)
	assert.Zero(t, c.Position())

	ft.advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, c.Position())
}

func TestClock_Rate(t *testing.T) {
	c, ft := newTestClock(0)
	ft.advance(2 * time.Second)

	c.SetPlaybackRate(0.5)
	assert.InDelta(t, 0.5, c.PlaybackRate(), 1e-9)
	ft.advance(2 * time.Second)
	assert.Equal(t, 3*time.Second, c.Position())

	c.SetPlaybackRate(0)
	assert.InDelta(t, 0.5, c.PlaybackRate(), 1e-9)
}

func TestClock_Pause(t *testing.T) {
	c, ft := newTestClock(0)
	ft.advance(time.Second)
	c.Toggle()
	assert.True(t, c.Paused())

	ft.advance(5 * time.Second)
	assert.Equal(t, time.Second, c.Position())

	c.Toggle()
	ft.advance(time.Second)
	assert.Equal(t, 2*time.Second, c.Position())
}

func TestClock_SetPosition(t *testing.T) {
	c, ft := newTestClock(10 * time.Second)
	c.SetPosition(4 * time.Second)
	ft.advance(time.Second)
	assert.Equal(t, 5*time.Second, c.Position())

	c.SetPosition(-time.Second)
	assert.Zero(t, c.Position())

	c.SetPosition(time.Minute)
	assert.Equal(t, 10*time.Second, c.Position())
}

func TestClock_LoopWraps(t *testing.T) {
	c, ft := newTestClock(10 * time.Second)
	c.SetLoop(true)
	assert.True(t, c.Loop())

	ft.advance(12 * time.Second)
	assert.Equal(t, 2*time.Second, c.Position())

	c.SetLoop(false)
	ft.advance(20 * time.Second)
	assert.Equal(t, 10*time.Second, c.Position())
}
