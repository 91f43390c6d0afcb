//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLyricsSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLyricsSave,
			err:      errors.New("line 3 has no timestamp"),
			expected: "Failed to save lyrics: line 3 has no timestamp",
		},
		{
			name:     "fetch operation",
			op:       OpLyricsFetch,
			err:      errors.New("network error"),
			expected: "Failed to fetch lyrics: network error",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImportFile,
			context:  "song.txt",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpImportFile,
			context:  "song.txt",
			err:      errors.New("permission denied"),
			expected: "Failed to import file 'song.txt': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImportFile,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to import file: permission denied",
		},
		{
			name:     "download with directory context",
			op:       OpDownloadFile,
			context:  "/home/user/lyrics",
			err:      errors.New("read-only file system"),
			expected: "Failed to download lyrics '/home/user/lyrics': read-only file system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWith(tt.op, tt.context, tt.err))
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpLyricsFetch, OpLyricsSave, OpLyricsReset, OpLyricsPaste,
		OpImportFile, OpDownloadFile, OpParseFile,
		OpPlaybackStart, OpPlaybackRate,
		OpStoreOpen, OpStoreList, OpStoreDelete,
		OpConfigLoad, OpLogSetup,
	}

	testErr := errors.New("test error")
	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			assert.NotEmpty(t, op)
			assert.Equal(t, "Failed to "+string(op)+": test error", Format(op, testErr))
		})
	}
}
