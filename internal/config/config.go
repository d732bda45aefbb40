// Package config resolves runtime settings from .env, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMode      = "MBTI_MODE"
	EnvTheme     = "MBTI_THEME"
	EnvLogFile   = "MBTI_LOG_FILE"
	EnvLogLevel  = "MBTI_LOG_LEVEL"
	EnvChartSize = "MBTI_CHART_SIZE"
	EnvCatalog   = "MBTI_CATALOG"
)

// Config holds all runtime settings.
type Config struct {
	// Mode is the default question set: quick or deep.
	Mode string `validate:"oneof=quick deep"`

	// Theme selects the terminal palette.
	Theme string `validate:"oneof=aurora sunset mono light"`

	// LogFile is where the TUI writes logs. Empty disables file logging.
	LogFile string

	// LogLevel is a zap level name.
	LogLevel string `validate:"oneof=debug info warn error"`

	// ChartSize is the nominal radar size in pixels for SVG output.
	ChartSize int `validate:"min=40,max=4096"`

	// Catalog optionally points at a YAML question catalog replacing the bundled one.
	Catalog string `validate:"omitempty,filepath"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:      "quick",
		Theme:     "aurora",
		LogFile:   defaultLogFile(),
		LogLevel:  "info",
		ChartSize: 240,
	}
}

// Load reads an optional .env file from the working directory, then applies
// MBTI_* environment variables over the defaults. Flags are applied by the
// caller afterwards, followed by Validate.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvMode); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvChartSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvChartSize, err)
		}
		cfg.ChartSize = n
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.Catalog = v
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// defaultLogFile resolves the log path in priority order:
// 1. $XDG_STATE_HOME/mbti/mbti.log
// 2. ~/.local/state/mbti/mbti.log
// Returns "" if no home directory can be found.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "mbti", "mbti.log")
}
