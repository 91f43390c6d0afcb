// Package editor holds the lyrics sync editing session: an ordered list of
// lines, a cursor, and the operations that time lines against playback.
//
// A Session is owned by a single event loop and is not safe for concurrent use.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/llehouerou/lrcsync/internal/lyrics"
)

// PlaybackRates are the rates accepted by SetPlaybackRate.
var PlaybackRates = []float64{0.5, 0.75, 1, 1.25, 1.5}

// ErrInvalidRate is returned for a playback rate outside PlaybackRates.
var ErrInvalidRate = errors.New("unsupported playback rate")

// Playback is the audio position provider the session times lines against.
type Playback interface {
	Position() time.Duration
	SetPosition(pos time.Duration)
	PlaybackRate() float64
	SetPlaybackRate(rate float64)
	Loop() bool
	SetLoop(loop bool)
}

// Sink persists the serialized lyrics of a track.
type Sink interface {
	SaveLyrics(ctx context.Context, track lyrics.Track, lrc string) error
}

// Config configures a new Session.
type Config struct {
	Track lyrics.Track
	// Saved lyrics are resumed as-is when non-nil.
	Saved *lyrics.Lyrics
	// RawText is parsed when Saved is nil, and again on ResetRemote.
	RawText  string
	Playback Playback
	Sink     Sink
	Logger   *slog.Logger
}

// Session is one editing session over a track's lyrics.
type Session struct {
	track    lyrics.Track
	rawText  string
	playback Playback
	sink     Sink
	log      *slog.Logger

	lines  []lyrics.Line
	cursor int

	origLoop bool
	origRate float64
}

// New starts a session. Playback loop is switched on until Close.
func New(cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		track:    cfg.Track,
		rawText:  cfg.RawText,
		playback: cfg.Playback,
		sink:     cfg.Sink,
		log:      log.With("track", cfg.Track.String()),
		cursor:   -1,
		origLoop: cfg.Playback.Loop(),
		origRate: cfg.Playback.PlaybackRate(),
	}

	if cfg.Saved != nil {
		s.lines = slices.Clone(cfg.Saved.Lines)
	} else {
		s.lines = initLines(cfg.RawText)
	}

	s.playback.SetLoop(true)
	s.log.Debug("session.started", "lines", len(s.lines), "saved", cfg.Saved != nil)
	return s
}

// Close restores the playback loop flag and rate found at New.
func (s *Session) Close() {
	s.playback.SetLoop(s.origLoop)
	s.playback.SetPlaybackRate(s.origRate)
	s.log.Debug("session.closed")
}

func initLines(text string) []lyrics.Line {
	l := lyrics.Parse(text, lyrics.EditorOptions)
	if l == nil {
		return []lyrics.Line{}
	}
	return l.Lines
}

// Track returns the track being edited.
func (s *Session) Track() lyrics.Track { return s.track }

// Lines returns a copy of the current lines.
func (s *Session) Lines() []lyrics.Line { return slices.Clone(s.lines) }

// Line returns the line at index i.
func (s *Session) Line(i int) (lyrics.Line, bool) {
	if !s.valid(i) {
		return lyrics.Line{}, false
	}
	return s.lines[i], true
}

// Len returns the number of lines.
func (s *Session) Len() int { return len(s.lines) }

// Cursor returns the index of the last marked or jumped-to line, -1 before
// the first line.
func (s *Session) Cursor() int { return s.cursor }

func (s *Session) valid(i int) bool { return i >= 0 && i < len(s.lines) }

// Mark times the line after the cursor at the current playback position and
// moves the cursor onto it. It does nothing when no line is left.
func (s *Session) Mark() bool {
	next := s.cursor + 1
	if !s.valid(next) {
		return false
	}
	pos := s.playback.Position()
	s.lines[next].Start = pos
	s.lines[next].Timed = true
	s.cursor = next
	s.log.Debug("line.marked", "index", next, "start", lyrics.FormatTime(pos))
	return true
}

// InsertLine inserts an empty line timed at the current playback position
// after the cursor and moves the cursor onto it.
func (s *Session) InsertLine() {
	next := s.cursor + 1
	pos := s.playback.Position()
	s.lines = slices.Insert(s.lines, next, lyrics.Line{Start: pos, Timed: true})
	s.cursor = next
	s.log.Debug("line.inserted", "index", next, "start", lyrics.FormatTime(pos))
}

// RemoveLine deletes line i. The cursor moves back by one when the removed
// line was at or before it.
func (s *Session) RemoveLine(i int) bool {
	if !s.valid(i) {
		return false
	}
	s.lines = slices.Delete(s.lines, i, i+1)
	if i <= s.cursor {
		s.cursor--
	}
	s.log.Debug("line.removed", "index", i, "cursor", s.cursor)
	return true
}

// Jump seeks playback to the start of line i and moves the cursor onto it.
// Untimed lines are ignored.
func (s *Session) Jump(i int) bool {
	line, ok := s.Line(i)
	if !ok {
		return false
	}
	return s.JumpTo(line.Start, line.Timed, i)
}

// JumpTo seeks playback to start and sets the cursor to i. It does nothing
// when timed is false or i is out of range.
func (s *Session) JumpTo(start time.Duration, timed bool, i int) bool {
	if !timed || !s.valid(i) {
		return false
	}
	s.playback.SetPosition(start)
	s.cursor = i
	s.log.Debug("line.jumped", "index", i, "start", lyrics.FormatTime(start))
	return true
}

// ModifyLine replaces the text of line i.
func (s *Session) ModifyLine(i int, text string) bool {
	if !s.valid(i) {
		return false
	}
	s.lines[i].Text = text
	return true
}

// ResetLocal seeks playback to 0 and moves the cursor before the first line.
// A non-nil lines replaces the whole sequence.
func (s *Session) ResetLocal(lines []lyrics.Line) {
	s.playback.SetPosition(0)
	s.cursor = -1
	if lines != nil {
		s.lines = lines
	}
	s.log.Debug("session.reset", "lines", len(s.lines), "replaced", lines != nil)
}

// PasteImport replaces the sequence with the lines parsed from raw.
func (s *Session) PasteImport(raw string) {
	s.ResetLocal(initLines(raw))
}

// ImportReader reads all of r and imports it like pasted text.
func (s *Session) ImportReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read lyrics: %w", err)
	}
	s.PasteImport(string(data))
	return nil
}

// ImportFile imports the text file at path.
func (s *Session) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ImportReader(f)
}

// Serialize renders the current lines in LRC format.
func (s *Session) Serialize() string {
	return lyrics.Serialize(s.lines)
}

// Validate reports ErrNoLines for an empty sequence and an *UntimedError
// when any line has no timestamp.
func (s *Session) Validate() error {
	if len(s.lines) == 0 {
		return ErrNoLines
	}
	var untimed []int
	for i, line := range s.lines {
		if !line.Timed {
			untimed = append(untimed, i)
		}
	}
	if len(untimed) > 0 {
		return &UntimedError{Indices: untimed}
	}
	return nil
}

// Save validates the lines and hands the serialized lyrics to the sink.
// Nothing is saved when validation fails.
func (s *Session) Save(ctx context.Context) error {
	if err := s.Validate(); err != nil {
		s.log.Debug("save.refused", "err", err)
		return err
	}
	if err := s.sink.SaveLyrics(ctx, s.track, s.Serialize()); err != nil {
		return fmt.Errorf("save lyrics: %w", err)
	}
	s.log.Info("save.done", "lines", len(s.lines))
	return nil
}

// ResetRemote clears the saved lyrics of the track and restarts from the
// track's raw lyrics text.
func (s *Session) ResetRemote(ctx context.Context) error {
	if err := s.sink.SaveLyrics(ctx, s.track, ""); err != nil {
		return fmt.Errorf("reset lyrics: %w", err)
	}
	s.ResetLocal(initLines(s.rawText))
	s.log.Info("save.cleared")
	return nil
}

// Download writes the serialized lyrics to dir as "name - artists.lrc" and
// returns the written path. Untimed lines are written with carried-forward
// timestamps.
func (s *Session) Download(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, s.track.FileName())
	if err := os.WriteFile(path, []byte(s.Serialize()), 0o644); err != nil {
		return "", err
	}
	s.log.Info("download.done", "path", path)
	return path, nil
}

// SetPlaybackRate changes the playback rate to one of PlaybackRates.
func (s *Session) SetPlaybackRate(rate float64) error {
	if !slices.Contains(PlaybackRates, rate) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	s.playback.SetPlaybackRate(rate)
	return nil
}

// StepPlaybackRate moves the playback rate up (delta > 0) or down through
// PlaybackRates and returns the new rate.
func (s *Session) StepPlaybackRate(delta int) float64 {
	cur := s.playback.PlaybackRate()
	idx := slices.Index(PlaybackRates, cur)
	if idx < 0 {
		idx = slices.Index(PlaybackRates, 1)
	}
	idx = max(0, min(len(PlaybackRates)-1, idx+delta))
	s.playback.SetPlaybackRate(PlaybackRates[idx])
	return PlaybackRates[idx]
}
