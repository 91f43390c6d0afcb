package lyrics

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatTime renders d as mm:ss.xx, rounded to hundredths.
// Minutes are not capped at 99.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int64((d + 5*time.Millisecond) / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs%6000/100, cs%100)
}

// Serialize renders lines as "[mm:ss.xx] text\n" records.
//
// An untimed line reuses the last emitted timestamp (0 before any), and a
// line timed earlier than its predecessor is clamped to it, so the output
// timestamps never decrease.
func Serialize(lines []Line) string {
	var sb strings.Builder
	var last time.Duration
	for _, line := range lines {
		if line.Timed && line.Start > last {
			last = line.Start
		}
		sb.WriteByte('[')
		sb.WriteString(FormatTime(last))
		sb.WriteString("] ")
		sb.WriteString(strings.TrimSpace(lineBreaks.Replace(line.Text)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Encode writes the lyrics to w in LRC format, preceded by the ti/ar/al
// ID tags when withHeader is set.
func (l *Lyrics) Encode(w io.Writer, withHeader bool) error {
	var sb strings.Builder
	if withHeader {
		for _, tag := range []struct{ key, value string }{
			{"ti", l.Title},
			{"ar", l.Artist},
			{"al", l.Album},
		} {
			if tag.value != "" {
				fmt.Fprintf(&sb, "[%s:%s]\n", tag.key, strings.TrimSpace(lineBreaks.Replace(tag.value)))
			}
		}
	}
	sb.WriteString(Serialize(l.Lines))
	_, err := io.WriteString(w, sb.String())
	return err
}
