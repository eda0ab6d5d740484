// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the helpdesk TUI.
//
// Configuration comes from ~/.helpdesk/config.toml with built-in defaults
// and environment variable overrides. It is read once at startup; runtime
// state (session id, theme choice) lives in the state store, not here.
//
// Environment overrides:
//   - HELPDESK_BACKEND_URL overrides backend.base_url
//   - HELPDESK_USER_ID overrides backend.user_id
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/helpdesk-tui/internal/util"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.toml"

// Validation errors.
var (
	// ErrInvalidBaseURL indicates backend.base_url is not an http(s) URL.
	ErrInvalidBaseURL = errors.New("backend.base_url must be an http or https URL")

	// ErrInvalidTimeout indicates backend.timeout_secs is out of range.
	ErrInvalidTimeout = errors.New("backend.timeout_secs must be between 1 and 300")
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete helpdesk-tui configuration.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	UI      UIConfig      `toml:"ui"`
}

// BackendConfig holds the support-agent backend settings.
type BackendConfig struct {
	// BaseURL is the base URL of the backend REST surface.
	BaseURL string `toml:"base_url"`
	// UserID is an optional opaque user identifier sent on session creation.
	UserID string `toml:"user_id"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme is the fallback theme ("dark" or "light") used when no
	// preference has been stored yet. Empty means: follow the terminal's
	// detected color scheme.
	Theme string `toml:"theme"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:     "http://localhost:8000",
			TimeoutSecs: 30,
		},
	}
}

// Timeout returns the backend request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// DefaultPath returns the default config file path, ~/.helpdesk/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(homeDir, ".helpdesk", ConfigFileName), nil
}

// Load reads the config from the default path. A missing file is not an
// error: defaults apply. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadPath(path)
}

// LoadPath reads the config from a specific path.
func LoadPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HELPDESK_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("HELPDESK_USER_ID"); v != "" {
		c.Backend.UserID = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Backend.BaseURL)
	}
	if c.Backend.TimeoutSecs < 1 || c.Backend.TimeoutSecs > 300 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeout, c.Backend.TimeoutSecs)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to the given path atomically.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
