package store

import (
	"context"
	"sync"
	"time"

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

// Memory is an in-process Store, used when nothing should outlive the
// session and as a test double.
type Memory struct {
	mu      sync.Mutex
	entries map[lyrics.Track]Entry
	closed  bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[lyrics.Track]Entry)}
}

// SaveLyrics implements Store.
func (m *Memory) SaveLyrics(_ context.Context, track lyrics.Track, lrc string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lrc == "" {
		delete(m.entries, track)
		return nil
	}
	m.entries[track] = Entry{Track: track, Lyric: lrc, UpdatedAt: time.Now()}
	return nil
}

// GetLyrics implements Store.
func (m *Memory) GetLyrics(_ context.Context, track lyrics.Track) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[track]
	if !ok {
		return "", ErrNotFound
	}
	return e.Lyric, nil
}

// List implements Store.
func (m *Memory) List(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

// Close implements Store.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// IsClosed reports whether Close was called.
func (m *Memory) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Memory implements Store at compile time.
var _ Store = (*Memory)(nil)
