package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

var (
	song  = lyrics.Track{Name: "Song", Artists: "Band"}
	other = lyrics.Track{Name: "Other", Artists: "Band"}
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// backends returns every Store that runs without external services.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"sqlite": openTestSQLite(t),
		"memory": NewMemory(),
	}
}

func TestStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetLyrics(ctx, song)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.SaveLyrics(ctx, song, "[00:01.00] a\n"))
			got, err := s.GetLyrics(ctx, song)
			require.NoError(t, err)
			assert.Equal(t, "[00:01.00] a\n", got)

			// Update replaces.
			require.NoError(t, s.SaveLyrics(ctx, song, "[00:02.00] b\n"))
			got, err = s.GetLyrics(ctx, song)
			require.NoError(t, err)
			assert.Equal(t, "[00:02.00] b\n", got)

			_, err = s.GetLyrics(ctx, other)
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_EmptyLyricDeletes(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveLyrics(ctx, song, "[00:01.00] a\n"))
			require.NoError(t, s.SaveLyrics(ctx, song, ""))

			_, err := s.GetLyrics(ctx, song)
			require.ErrorIs(t, err, ErrNotFound)

			// Clearing a track that was never saved is fine.
			require.NoError(t, s.SaveLyrics(ctx, other, ""))
		})
	}
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveLyrics(ctx, song, "a"))
			require.NoError(t, s.SaveLyrics(ctx, other, "b"))

			entries, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 2)

			got := map[lyrics.Track]string{}
			for _, e := range entries {
				got[e.Track] = e.Lyric
				assert.False(t, e.UpdatedAt.IsZero())
			}
			assert.Equal(t, map[lyrics.Track]string{song: "a", other: "b"}, got)
		})
	}
}

func TestSQLite_ListOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SaveLyrics(ctx, song, "a"))
	now = now.Add(time.Minute)
	require.NoError(t, s.SaveLyrics(ctx, other, "b"))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, other, entries[0].Track)
	assert.Equal(t, time.Unix(1060, 0), entries[0].UpdatedAt)
	assert.Equal(t, song, entries[1].Track)
}

func TestOpenSQLite_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "lrcsync.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveLyrics(ctx, song, "persisted"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.GetLyrics(ctx, song)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(ctx, Options{Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Backend: "postgres"})
	require.Error(t, err)

	_, err = Open(ctx, Options{Backend: BackendRedis})
	require.Error(t, err)
}

func TestOpenRedis_BadURL(t *testing.T) {
	_, err := OpenRedis(context.Background(), "http://nope", "")
	require.Error(t, err)
}

func TestRedisKey(t *testing.T) {
	key := redisKey(song)
	e := entryFromHash(key, map[string]string{"lyric": "x", "updated_at": "1060"})
	assert.Equal(t, song, e.Track)
	assert.Equal(t, "x", e.Lyric)
	assert.Equal(t, time.Unix(1060, 0), e.UpdatedAt)

	// Names containing the separator characters of other tracks stay distinct.
	assert.NotEqual(t, redisKey(lyrics.Track{Name: "a b", Artists: "c"}), redisKey(lyrics.Track{Name: "a", Artists: "b c"}))
}

func TestMemory_Close(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
