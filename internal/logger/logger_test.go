package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(string(data)), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		entries = append(entries, m)
	}
	return entries
}

func TestSetup_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lrcsync.log")
	cleanup, err := Setup(Config{Path: path})
	require.NoError(t, err)

	assert.Equal(t, path, Path())
	L().Info("save.done", "lines", 3)
	L().Debug("line.marked", "index", 0)
	require.NoError(t, cleanup())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "logger.initialized", entries[0]["msg"])
	assert.Equal(t, "save.done", entries[1]["msg"])
	assert.InDelta(t, 3, entries[1]["lines"], 0)
	assert.NotContains(t, entries[1], "source")
}

func TestSetup_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrcsync.log")
	cleanup, err := Setup(Config{Path: path, Debug: true})
	require.NoError(t, err)

	L().Debug("line.marked", "index", 0)
	require.NoError(t, cleanup())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "line.marked", entries[1]["msg"])
	assert.Contains(t, entries[1], "source")
}

func TestCleanup_RestoresDiscard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrcsync.log")
	cleanup, err := Setup(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.Empty(t, Path())
	L().Info("after.cleanup")

	entries := readEntries(t, path)
	assert.Len(t, entries, 1)
}

func TestSetup_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := Setup(Config{Path: filepath.Join(file, "sub", "lrcsync.log")})
	assert.Error(t, err)
	assert.Empty(t, Path())
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	assert.Equal(t, "lrcsync.log", filepath.Base(p))
	assert.Equal(t, "lrcsync", filepath.Base(filepath.Dir(p)))
}
