// Package config loads client configuration by layering defaults, an
// optional YAML file, and CUP_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all client settings.
type Config struct {
	// APIURL is the base URL of the scoreboard API.
	APIURL string `koanf:"api_url"`

	// PollSeconds is the full-snapshot refresh interval.
	PollSeconds int `koanf:"poll_seconds"`

	// DebounceMs is the quiet period before a stepper edit is persisted.
	DebounceMs int `koanf:"debounce_ms"`

	// CachePath is the local cache database path. Empty means
	// ~/.cup/cache.db, resolved at startup.
	CachePath string `koanf:"cache_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:      "https://obp43wwmdk.execute-api.us-east-1.amazonaws.com",
		PollSeconds: 30,
		DebounceMs:  300,
	}
}

// Load builds a Config. Precedence (low → high):
//  1. defaults
//  2. YAML file named by CUP_CONFIG, if set
//  3. environment (CUP_API_URL, CUP_POLL_SECONDS, ...)
func Load() (Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path := os.Getenv("CUP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, err
		}
	}

	envProvider := env.Provider("CUP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CUP_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, err
	}

	if cfg.APIURL == "" {
		return cfg, errors.New("api_url must not be empty")
	}
	if cfg.PollSeconds < 1 {
		return cfg, errors.New("poll_seconds must be at least 1")
	}
	if cfg.DebounceMs < 1 {
		return cfg, errors.New("debounce_ms must be at least 1")
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return cfg, nil
}

// PollInterval returns the snapshot poll cadence.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollSeconds) * time.Second
}

// Debounce returns the stepper write quiet period.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
