package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/cnchist/internal/timeutil"
)

const configFile = "config.toml"

// Config holds all cnchist configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Clock      ClockConfig      `toml:"clock"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
	Breaks     BreaksConfig     `toml:"breaks"`
}

// LogConfig holds activity log location settings.
type LogConfig struct {
	Path string `toml:"path,omitempty"`
}

// ClockConfig corrects for a machine controller whose clock is set
// wrong. The correction is added to every parsed timestamp.
type ClockConfig struct {
	AdjustHours   int `toml:"adjust_hours"`
	AdjustMinutes int `toml:"adjust_minutes"`
}

// AppearanceConfig selects the color theme shared by the TUI and the
// CLI renderers.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TUIConfig holds interactive viewer settings.
type TUIConfig struct {
	AutoRefresh bool `toml:"auto_refresh"`
}

// BreaksConfig names shop break windows as "HH:MM-HH:MM" ranges. Gaps
// between commands that fall inside one are flagged as breaks rather
// than idle machine time.
type BreaksConfig struct {
	Morning string `toml:"morning,omitempty"`
	Lunch   string `toml:"lunch,omitempty"`
}

// DefaultConfig is the configuration in effect until a file is written.
func DefaultConfig() Config {
	var cfg Config
	cfg.Appearance.Theme = "flexoki-dark"
	cfg.TUI.AutoRefresh = true
	return cfg
}

// AdjustDuration returns the configured clock correction.
func (c ClockConfig) AdjustDuration() time.Duration {
	return time.Duration(c.AdjustHours)*time.Hour +
		time.Duration(c.AdjustMinutes)*time.Minute
}

// Windows parses the configured break ranges, skipping unset ones.
func (c BreaksConfig) Windows() ([]timeutil.Window, error) {
	var ws []timeutil.Window
	for _, spec := range []string{c.Morning, c.Lunch} {
		if spec == "" {
			continue
		}
		w, err := timeutil.ParseWindow(spec)
		if err != nil {
			return nil, fmt.Errorf("break window %q: %w", spec, err)
		}
		ws = append(ws, w)
	}
	return ws, nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cnchist")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}

// Load reads the config file. A missing file is not an error: the
// defaults come back unchanged so first runs work without setup.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(ConfigPath(), &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory on first use.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LogPath returns the activity log path from env var or config, in
// that order. Empty means fall back to the well-known locations.
func LogPath(cfg Config) string {
	if p := os.Getenv("CNCHIST_LOG"); p != "" {
		return p
	}
	return cfg.Log.Path
}

// Exists reports whether a config file is present on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
