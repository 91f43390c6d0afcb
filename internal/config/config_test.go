package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/lyrics", filepath.Join(home, "lyrics")},
		{"tilde with nested path", "~/music/lyrics/lrc", filepath.Join(home, "music", "lyrics", "lrc")},
		{"absolute path unchanged", "/srv/lyrics", "/srv/lyrics"},
		{"relative path unchanged", "lyrics/out", "lyrics/out"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, "lrcsync", filepath.Base(filepath.Dir(paths[0])))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvRedisPassword, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.DownloadDir)
	assert.InDelta(t, 1.0, cfg.GetPlaybackRate(), 1e-9)
	assert.True(t, cfg.LrclibEnabled())
	assert.False(t, cfg.HasRedisConfig())
	assert.Equal(t, "sqlite", cfg.GetStoreConfig().Backend)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadFrom_File(t *testing.T) {
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvRedisPassword, "")

	path := writeConfig(t, `
download_dir = "/tmp/lrc"
playback_rate = 0.75

[store]
backend = "redis"
redis_url = "redis://localhost:6379/1"

[lrclib]
enabled = false

[log]
debug = true
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lrc", cfg.DownloadDir)
	assert.InDelta(t, 0.75, cfg.GetPlaybackRate(), 1e-9)
	assert.False(t, cfg.LrclibEnabled())
	assert.True(t, cfg.Log.Debug)
	assert.True(t, cfg.HasRedisConfig())

	store := cfg.GetStoreConfig()
	assert.Equal(t, "redis", store.Backend)
	assert.Equal(t, "redis://localhost:6379/1", store.RedisURL)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	t.Setenv(EnvRedisURL, "")
	first := writeConfig(t, "download_dir = \"/a\"\nplayback_rate = 1.5\n")
	second := writeConfig(t, "download_dir = \"/b\"\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)
	assert.Equal(t, "/b", cfg.DownloadDir)
	assert.InDelta(t, 1.5, cfg.GetPlaybackRate(), 1e-9)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "download_dir = ["))
	assert.Error(t, err)
}

func TestLoadFrom_EnvOverridesRedis(t *testing.T) {
	t.Setenv(EnvRedisURL, "redis://cache:6379/0")
	t.Setenv(EnvRedisPassword, "secret")

	cfg, err := LoadFrom(writeConfig(t, "[store]\nredis_url = \"redis://file:6379/0\"\n"))
	require.NoError(t, err)

	store := cfg.GetStoreConfig()
	assert.Equal(t, "redis", store.Backend)
	assert.Equal(t, "redis://cache:6379/0", store.RedisURL)
	assert.Equal(t, "secret", store.RedisPassword)
}

func TestGetStoreConfig_RedisWithoutURLFallsBack(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Backend: "redis"}}
	assert.Equal(t, "sqlite", cfg.GetStoreConfig().Backend)
}
