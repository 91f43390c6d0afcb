package player

import (
	"sync"
	"time"
)

// Clock is a playback source without audio: its position follows the wall
// clock scaled by the playback rate.
type Clock struct {
	mu     sync.Mutex
	now    func() time.Time
	base   time.Duration
	anchor time.Time
	rate   float64
	paused bool
	loop   bool
	length time.Duration
}

// NewClock returns a running clock at position 0. A positive length bounds
// the position, wrapping around when loop is set.
func NewClock(length time.Duration) *Clock {
	c := &Clock{now: time.Now, rate: 1, length: length}
	c.anchor = c.now()
	return c
}

func (c *Clock) position() time.Duration {
	pos := c.base
	if !c.paused {
		pos += time.Duration(float64(c.now().Sub(c.anchor)) * c.rate)
	}
	if c.length > 0 && pos >= c.length {
		if c.loop {
			return pos % c.length
		}
		return c.length
	}
	return pos
}

// rebase folds the elapsed time into base so rate or state can change.
func (c *Clock) rebase() {
	c.base = c.position()
	c.anchor = c.now()
}

// Position returns the current position.
func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position()
}

// SetPosition moves the clock to pos.
func (c *Clock) SetPosition(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos = max(0, pos)
	if c.length > 0 {
		pos = min(pos, c.length)
	}
	c.base = pos
	c.anchor = c.now()
}

// PlaybackRate returns the speed factor.
func (c *Clock) PlaybackRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// SetPlaybackRate changes the speed factor from now on.
func (c *Clock) SetPlaybackRate(rate float64) {
	if rate <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebase()
	c.rate = rate
}

// Loop reports whether the position wraps at the end.
func (c *Clock) Loop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loop
}

// SetLoop sets whether the position wraps at the end.
func (c *Clock) SetLoop(loop bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebase()
	c.loop = loop
}

// Toggle pauses or resumes the clock.
func (c *Clock) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebase()
	c.paused = !c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Duration returns the length given to NewClock.
func (c *Clock) Duration() time.Duration { return c.length }

// Close is a no-op.
func (c *Clock) Close() {}
