// Package store persists the lyrics saved from editing sessions.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

// ErrNotFound is returned when no lyrics are saved for a track.
var ErrNotFound = errors.New("no saved lyrics")

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Entry is one saved lyrics document.
type Entry struct {
	Track     lyrics.Track
	Lyric     string
	UpdatedAt time.Time
}

// Store saves serialized lyrics per track. Saving an empty lyric removes the
// track's entry.
type Store interface {
	SaveLyrics(ctx context.Context, track lyrics.Track, lrc string) error
	GetLyrics(ctx context.Context, track lyrics.Track) (string, error)
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Path          string // sqlite database file, empty for the default
	RedisURL      string
	RedisPassword string
}

// Open opens the backend named in opts. An empty backend means sqlite.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		return OpenSQLite(opts.Path)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.RedisPassword)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, errors.New("unknown store backend: " + opts.Backend)
}
