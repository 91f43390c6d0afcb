package lyrics

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxFilenameBytes = 100

// Track identifies the song being edited. Both fields are opaque strings.
type Track struct {
	Name    string
	Artists string
}

// String returns "name - artists".
func (t Track) String() string {
	if t.Artists == "" {
		return t.Name
	}
	return t.Name + " - " + t.Artists
}

// FileName returns the download file name "name - artists.lrc".
func (t Track) FileName() string {
	return sanitizeFilename(t.String()) + ".lrc"
}

// sanitizeFilename removes or replaces characters that are problematic in filenames.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

func sanitizeFilename(name string) string {
	// Replace invalid characters with underscore
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	// Trim spaces and dots from ends
	name = strings.Trim(name, " .")
	// Limit length without splitting a rune
	if len(name) > maxFilenameBytes {
		cut := maxFilenameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimRight(name[:cut], " .")
	}
	if name == "" {
		name = "_"
	}
	return name
}
