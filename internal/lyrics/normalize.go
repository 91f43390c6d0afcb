package lyrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize collapses runs of blank lines. A line break followed by
// whitespace that contains more line breaks is replaced by the first break,
// keeping the whitespace after the last one. Normalize is idempotent.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); {
		brk := breakAt(text, i)
		if brk == 0 {
			_, size := utf8.DecodeRuneInString(text[i:])
			sb.WriteString(text[i : i+size])
			i += size
			continue
		}

		sb.WriteString(text[i : i+brk])
		i += brk

		// Find the end of the last line break inside the following whitespace.
		lastBreakEnd := -1
		for j := i; j < len(text); {
			if n := breakAt(text, j); n > 0 {
				j += n
				lastBreakEnd = j
				continue
			}
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		if lastBreakEnd > 0 {
			i = lastBreakEnd
		}
	}
	return sb.String()
}

// breakAt returns the length of the line break starting at i, or 0.
func breakAt(text string, i int) int {
	switch {
	case strings.HasPrefix(text[i:], "\r\n"):
		return 2
	case text[i] == '\n':
		return 1
	}
	return 0
}
