// Package config resolves pomoctl settings from a YAML file, the
// process environment, and built-in defaults.
//
// Resolution order, later wins: defaults, config file, POMOCTL_*
// environment variables. A .env or .env.local file in the working
// directory is loaded into the environment first; variables already set
// keep precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized on top of the config file.
const (
	EnvConfig     = "POMOCTL_CONFIG"
	EnvStateDir   = "POMOCTL_STATE_DIR"
	EnvDefinition = "POMOCTL_DEFINITION"
	EnvHistory    = "POMOCTL_HISTORY"
)

// Config carries the resolved settings for one invocation.
type Config struct {
	// Definition is the schedule used when start gets no argument.
	// Empty means the built-in default "4p45b10".
	Definition string `yaml:"definition"`

	// StateDir holds the active-run file and, by default, the history
	// database. Empty resolves to the XDG state directory.
	StateDir string `yaml:"state_dir"`

	// HistoryPath locates the run archive. Empty means
	// <state_dir>/history.db.
	HistoryPath string `yaml:"history_path"`

	// HistoryDisabled turns off archiving of stopped runs.
	HistoryDisabled bool `yaml:"history_disabled"`

	// WatchPath is the default overlay file for watch.
	WatchPath string `yaml:"watch_path"`

	// WatchIntervalSeconds is the overlay refresh period.
	WatchIntervalSeconds int `yaml:"watch_interval_seconds"`
}

// Load resolves the configuration. path comes from the -c flag; when
// empty it falls back to $POMOCTL_CONFIG and then the per-user config
// directory. A missing file is fine unless it was named explicitly.
func Load(path string) (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		WatchPath:            "pomodoro.txt",
		WatchIntervalSeconds: 1,
	}

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "pomoctl", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile tries .env then .env.local and stops at the first one that
// loads. Existing environment variables are never overwritten.
func loadEnvFile() {
	for _, name := range []string{".env", ".env.local"} {
		if err := godotenv.Load(name); err == nil {
			return
		}
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvStateDir); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv(EnvDefinition); v != "" {
		cfg.Definition = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		cfg.HistoryPath = v
	}
}

// finalize fills derived values: the state directory follows the XDG
// state convention and the history database sits next to the run file.
func finalize(cfg *Config) error {
	if cfg.StateDir == "" {
		dir, err := defaultStateDir()
		if err != nil {
			return err
		}
		cfg.StateDir = dir
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = filepath.Join(cfg.StateDir, "history.db")
	}
	if cfg.WatchPath == "" {
		cfg.WatchPath = "pomodoro.txt"
	}
	if cfg.WatchIntervalSeconds <= 0 {
		cfg.WatchIntervalSeconds = 1
	}
	return nil
}

// defaultStateDir is $XDG_STATE_HOME/pomoctl, falling back to
// ~/.local/state/pomoctl.
func defaultStateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "pomoctl"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "pomoctl"), nil
}

// WatchInterval is the overlay refresh period as a duration.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.WatchIntervalSeconds) * time.Second
}
