// Package lyrics provides lyrics parsing, serialization and sourcing.
package lyrics

import (
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Line represents a single lyric line. An untimed line has Timed == false
// and its Start is meaningless.
type Line struct {
	Start time.Duration
	Timed bool
	Text  string
}

// Lyrics contains parsed lyrics with optional metadata.
type Lyrics struct {
	Lines  []Line
	Title  string
	Artist string
	Album  string
}

// ParseOptions controls which lines Parse keeps.
type ParseOptions struct {
	// CleanLyrics drops lines without any letter or digit.
	CleanLyrics bool
	// KeepPlainText keeps lines that carry no timestamp as untimed lines.
	KeepPlainText bool
}

// EditorOptions are the options used when loading text into the sync editor.
var EditorOptions = ParseOptions{CleanLyrics: true, KeepPlainText: true}

// SavedOptions read back lyrics written by Serialize. Every saved line is
// kept, including timed lines without letters or digits such as "♪".
var SavedOptions = ParseOptions{KeepPlainText: true}

// maxMinutes is the largest minute value a time.Duration can hold with
// seconds added.
const maxMinutes = int64(math.MaxInt64/time.Minute) - 1

var (
	// Matches a leading [mm:ss.xx] or [mm:ss] token.
	timestampRe = regexp.MustCompile(`^\[(\d{2,}):(\d{2})(?:\.(\d{2}))?\]`)

	// Matches ID tags like [ar:Artist Name]
	metadataRe = regexp.MustCompile(`(?i)^\[(ti|ar|al|au|by|re|ve|la|tool|length|offset):(.*)\]$`)
)

// Parse converts raw text into lyrics. It returns nil when no line survives,
// which callers must tell apart from lyrics whose lines are all untimed.
// Malformed timestamps are kept as text.
func Parse(text string, opts ParseOptions) *Lyrics {
	l := parse(text, opts)
	if len(l.Lines) == 0 {
		return nil
	}
	return l
}

// ParseLRC parses LRC format lyrics from a reader. Lines without a timestamp
// are ignored.
func ParseLRC(r io.Reader) (*Lyrics, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(string(data), ParseOptions{}), nil
}

func parse(text string, opts ParseOptions) *Lyrics {
	l := &Lyrics{}
	expanded := false

	for raw := range strings.SplitSeq(Normalize(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if l.applyTag(line) {
			continue
		}

		stamps, rest := splitTimestamps(line)
		rest = strings.TrimSpace(rest)

		// A timed line with no text is a deliberate pause.
		pause := len(stamps) > 0 && rest == ""
		if opts.CleanLyrics && !pause && !hasLyricContent(rest) {
			continue
		}

		if len(stamps) == 0 {
			if opts.KeepPlainText {
				l.Lines = append(l.Lines, Line{Text: rest})
			}
			continue
		}

		// LRC can have multiple timestamps for the same text: [00:12.34][00:45.67]Text
		if len(stamps) > 1 {
			expanded = true
		}
		for _, ts := range stamps {
			l.Lines = append(l.Lines, Line{Start: ts, Timed: true, Text: rest})
		}
	}

	if expanded && len(l.Untimed()) == 0 {
		sort.SliceStable(l.Lines, func(i, j int) bool {
			return l.Lines[i].Start < l.Lines[j].Start
		})
	}
	return l
}

// applyTag stores a recognized ID tag and reports whether line was one.
func (l *Lyrics) applyTag(line string) bool {
	meta := metadataRe.FindStringSubmatch(line)
	if meta == nil {
		return false
	}
	value := strings.TrimSpace(meta[2])
	switch strings.ToLower(meta[1]) {
	case "ar":
		l.Artist = value
	case "ti":
		l.Title = value
	case "al":
		l.Album = value
	}
	return true
}

// splitTimestamps consumes adjacent leading timestamp tokens.
func splitTimestamps(line string) ([]time.Duration, string) {
	var stamps []time.Duration
	for {
		m := timestampRe.FindStringSubmatchIndex(line)
		if m == nil {
			return stamps, line
		}
		ts, ok := parseTimestamp(line, m)
		if !ok {
			return stamps, line
		}
		stamps = append(stamps, ts)
		line = line[m[1]:]
	}
}

// parseTimestamp converts the submatches of timestampRe into a duration.
func parseTimestamp(line string, m []int) (time.Duration, bool) {
	minutes, err := strconv.ParseInt(line[m[2]:m[3]], 10, 64)
	if err != nil || minutes > maxMinutes {
		return 0, false
	}
	seconds, err := strconv.Atoi(line[m[4]:m[5]])
	if err != nil || seconds >= 60 {
		return 0, false
	}
	var centis int
	if m[6] >= 0 {
		centis, err = strconv.Atoi(line[m[6]:m[7]])
		if err != nil {
			return 0, false
		}
	}
	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond, true
}

func hasLyricContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Untimed returns the indices of lines that have no timestamp yet.
func (l *Lyrics) Untimed() []int {
	var idx []int
	for i, line := range l.Lines {
		if !line.Timed {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clone returns a deep copy of the lyrics.
func (l *Lyrics) Clone() *Lyrics {
	if l == nil {
		return nil
	}
	c := *l
	c.Lines = append([]Line(nil), l.Lines...)
	return &c
}

// IsSynced returns true if at least one line carries a timestamp.
func (l *Lyrics) IsSynced() bool {
	for _, line := range l.Lines {
		if line.Timed {
			return true
		}
	}
	return false
}

// LineAt returns the index of the lyric line at the given playback position.
// Returns -1 if no line is active yet or if lyrics are unsynced.
func (l *Lyrics) LineAt(pos time.Duration) int {
	if len(l.Lines) == 0 || !l.IsSynced() {
		return -1
	}

	// Find the last timed line that starts at or before pos
	idx := -1
	for i, line := range l.Lines {
		if !line.Timed {
			continue
		}
		if line.Start > pos {
			break
		}
		idx = i
	}
	return idx
}
