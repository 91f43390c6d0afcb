package lyrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/dhowden/tag"

	"github.com/llehouerou/lrcsync/internal/lrclib"
)

// Source names reported in FetchResult.
const (
	SourceSaved    = "saved"
	SourceLocalLRC = "local"
	SourceLocalTxt = "text"
	SourceTags     = "tags"
	SourceCache    = "cache"
	SourceAPI      = "api"
	SourceNotFound = "not_found"
)

// SavedLyrics looks up lyrics previously saved for a track.
// An empty string means nothing is saved.
type SavedLyrics interface {
	GetLyrics(ctx context.Context, track Track) (string, error)
}

// Remote fetches lyrics from an online service.
type Remote interface {
	Get(ctx context.Context, artist, title string, duration time.Duration) (*lrclib.LyricsResult, error)
}

// Source provides the initial lyrics of an editing session from the saved
// store, local files, embedded tags, cache, or the lrclib API.
type Source struct {
	saved    SavedLyrics
	remote   Remote
	cacheDir string
}

// NewSource creates a new lyrics source. saved and remote may be nil.
func NewSource(saved SavedLyrics, remote Remote) *Source {
	return &Source{
		saved:    saved,
		remote:   remote,
		cacheDir: filepath.Join(xdg.CacheHome, "lrcsync", "lyrics"),
	}
}

// TrackInfo contains the information needed to fetch lyrics.
type TrackInfo struct {
	FilePath string // Path to audio file (for local .lrc/.txt lookup and tags)
	Artist   string
	Title    string
	Duration time.Duration
}

// Track returns the identity used by the store.
func (t TrackInfo) Track() Track {
	return Track{Name: t.Title, Artists: t.Artist}
}

// FetchResult contains the result of a lyrics fetch.
type FetchResult struct {
	// Saved holds previously saved lyrics, which the editor resumes as-is.
	Saved *Lyrics
	// RawText is the track's lyrics text, used when nothing is saved and
	// when the user resets the session.
	RawText string
	Source  string
	Err     error
}

// Fetch retrieves lyrics for a track. Saved lyrics are looked up first and
// returned alongside the raw text, which comes from the first of:
// 1. Local .lrc file (same directory as audio file)
// 2. Local .txt file
// 3. Lyrics embedded in the audio file's tags
// 4. Cached lrclib response
// 5. lrclib API (and cache the result)
func (s *Source) Fetch(ctx context.Context, track TrackInfo) FetchResult {
	var result FetchResult
	if s.saved != nil && track.Title != "" {
		text, err := s.saved.GetLyrics(ctx, track.Track())
		if err == nil && text != "" {
			result.Saved = Parse(text, SavedOptions)
		}
	}

	result.RawText, result.Source, result.Err = s.fetchRaw(ctx, track)
	if result.Saved != nil {
		result.Source = SourceSaved
	}
	return result
}

func (s *Source) fetchRaw(ctx context.Context, track TrackInfo) (string, string, error) {
	if track.FilePath != "" {
		base := strings.TrimSuffix(track.FilePath, filepath.Ext(track.FilePath))
		if text, err := readText(base + ".lrc"); err == nil && text != "" {
			return text, SourceLocalLRC, nil
		}
		if text, err := readText(base + ".txt"); err == nil && text != "" {
			return text, SourceLocalTxt, nil
		}
		if text, err := readEmbedded(track.FilePath); err == nil && text != "" {
			return text, SourceTags, nil
		}
	}

	// Need artist and title for cache/API lookup
	if track.Artist == "" || track.Title == "" {
		return "", SourceNotFound, nil
	}

	if text, err := readText(s.cachePath(track.Artist, track.Title)); err == nil && text != "" {
		return text, SourceCache, nil
	}

	if s.remote == nil {
		return "", SourceNotFound, nil
	}
	return s.fetchFromAPI(ctx, track)
}

// fetchFromAPI fetches lyrics from the lrclib API.
func (s *Source) fetchFromAPI(ctx context.Context, track TrackInfo) (string, string, error) {
	result, err := s.remote.Get(ctx, track.Artist, track.Title, track.Duration)
	if err != nil {
		// ErrNotFound is not a real error, just means no lyrics available
		if errors.Is(err, lrclib.ErrNotFound) {
			return "", SourceNotFound, nil
		}
		return "", SourceNotFound, err
	}

	var text string
	switch {
	case result.HasSyncedLyrics():
		text = result.SyncedLyrics
	case result.HasPlainLyrics():
		text = result.PlainLyrics
	default:
		return "", SourceNotFound, nil
	}

	_ = s.saveToCache(track.Artist, track.Title, text)
	return text, SourceAPI, nil
}

func readText(path string) (string, error) {
	if path == "" {
		return "", os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readEmbedded returns the unsynchronised lyrics stored in the file's tags.
func readEmbedded(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", err
	}
	return m.Lyrics(), nil
}

// cachePath returns the cache file path for a track.
func (s *Source) cachePath(artist, title string) string {
	if s.cacheDir == "" {
		return ""
	}
	return filepath.Join(s.cacheDir, sanitizeFilename(artist), sanitizeFilename(title)+".lrc")
}

// saveToCache saves fetched lyrics to the cache directory.
func (s *Source) saveToCache(artist, title, content string) error {
	path := s.cachePath(artist, title)
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0o600)
}

// TrackInfoFromFile builds the track info of an audio file from its tags,
// falling back to the file name for the title.
func TrackInfoFromFile(path string) TrackInfo {
	info := TrackInfo{FilePath: path}
	if f, err := os.Open(path); err == nil {
		if m, err := tag.ReadFrom(f); err == nil {
			info.Title = strings.TrimSpace(m.Title())
			info.Artist = strings.TrimSpace(m.Artist())
		}
		f.Close()
	}
	if info.Title == "" {
		info.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return info
}
