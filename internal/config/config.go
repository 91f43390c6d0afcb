package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables that override the Redis store settings.
const (
	EnvRedisURL      = "LRCSYNC_REDIS_URL"
	EnvRedisPassword = "LRCSYNC_REDIS_PASSWORD"
)

type Config struct {
	DownloadDir  string  `koanf:"download_dir"`  // where "w" writes .lrc files (default: cwd)
	PlaybackRate float64 `koanf:"playback_rate"` // initial rate (default: 1)

	Store  StoreConfig  `koanf:"store"`
	Lrclib LrclibConfig `koanf:"lrclib"`
	Log    LogConfig    `koanf:"log"`
}

// StoreConfig selects where saved lyrics live.
type StoreConfig struct {
	Backend       string `koanf:"backend"`   // "sqlite" or "redis" (default: "sqlite")
	Path          string `koanf:"path"`      // sqlite file, empty means the XDG data dir
	RedisURL      string `koanf:"redis_url"` // e.g. "redis://localhost:6379/0"
	RedisPassword string `koanf:"redis_password"`
}

// LrclibConfig holds lrclib.net lookup settings.
type LrclibConfig struct {
	Enabled *bool  `koanf:"enabled"`  // default: true
	BaseURL string `koanf:"base_url"` // default: https://lrclib.net/api
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool `koanf:"debug"`
}

// Load reads the config files and applies environment overrides.
func Load() (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DownloadDir = expandPath(cfg.DownloadDir)
	cfg.Store.Path = expandPath(cfg.Store.Path)

	if url := os.Getenv(EnvRedisURL); url != "" {
		cfg.Store.RedisURL = url
		if cfg.Store.Backend == "" {
			cfg.Store.Backend = "redis"
		}
	}
	if pw := os.Getenv(EnvRedisPassword); pw != "" {
		cfg.Store.RedisPassword = pw
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/lrcsync/config.toml
		filepath.Join(xdg.ConfigHome, "lrcsync", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasRedisConfig returns true if the Redis store is configured.
func (c *Config) HasRedisConfig() bool {
	return c.Store.RedisURL != ""
}

// GetStoreConfig returns the store configuration with defaults applied.
func (c *Config) GetStoreConfig() StoreConfig {
	cfg := c.Store
	if cfg.Backend != "redis" || cfg.RedisURL == "" {
		cfg.Backend = "sqlite"
	}
	return cfg
}

// LrclibEnabled reports whether online lookups are on (default: true).
func (c *Config) LrclibEnabled() bool {
	return c.Lrclib.Enabled == nil || *c.Lrclib.Enabled
}

// GetPlaybackRate returns the initial playback rate (default: 1).
func (c *Config) GetPlaybackRate() float64 {
	if c.PlaybackRate <= 0 {
		return 1
	}
	return c.PlaybackRate
}
