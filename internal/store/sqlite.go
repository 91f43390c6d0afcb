package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

const (
	appName    = "lrcsync"
	dbFileName = "lrcsync.db"
)

// SQLite stores lyrics in a local SQLite database.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path. An empty path
// uses the XDG data directory.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		var err error
		path, err = xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, err
		}
	}

	if path != ":memory:" {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := initSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, now: time.Now}, nil
}

// DB returns the underlying database.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// SaveLyrics implements Store.
func (s *SQLite) SaveLyrics(ctx context.Context, track lyrics.Track, lrc string) error {
	if lrc == "" {
		_, err := s.db.ExecContext(ctx, `
			DELETE FROM saved_lyrics WHERE name = ? AND artists = ?
		`, track.Name, track.Artists)
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_lyrics (name, artists, lyric, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name, artists) DO UPDATE SET
			lyric = excluded.lyric,
			updated_at = excluded.updated_at
	`, track.Name, track.Artists, lrc, s.now().Unix())
	return err
}

// GetLyrics implements Store.
func (s *SQLite) GetLyrics(ctx context.Context, track lyrics.Track) (string, error) {
	var lyric string
	err := s.db.QueryRowContext(ctx, `
		SELECT lyric FROM saved_lyrics WHERE name = ? AND artists = ?
	`, track.Name, track.Artists).Scan(&lyric)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return lyric, nil
}

// List implements Store, most recently updated first.
func (s *SQLite) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, artists, lyric, updated_at
		FROM saved_lyrics
		ORDER BY updated_at DESC, name, artists
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt int64
		if err := rows.Scan(&e.Track.Name, &e.Track.Artists, &e.Lyric, &updatedAt); err != nil {
			return nil, err
		}
		e.UpdatedAt = time.Unix(updatedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Verify SQLite implements Store at compile time.
var _ Store = (*SQLite)(nil)
