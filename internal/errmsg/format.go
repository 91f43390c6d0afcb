// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Lyrics operations
	OpLyricsFetch Op = "fetch lyrics"
	OpLyricsSave  Op = "save lyrics"
	OpLyricsReset Op = "reset lyrics"
	OpLyricsPaste Op = "paste lyrics"

	// File operations
	OpImportFile   Op = "import file"
	OpDownloadFile Op = "download lyrics"
	OpParseFile    Op = "parse lyrics file"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackRate  Op = "change playback rate"

	// Store operations
	OpStoreOpen   Op = "open lyrics store"
	OpStoreList   Op = "list saved lyrics"
	OpStoreDelete Op = "delete saved lyrics"

	// Initialization
	OpConfigLoad Op = "load config"
	OpLogSetup   Op = "set up logging"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
