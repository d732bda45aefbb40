// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose bool
	// File sends output to a file instead of stderr. The TUI owns the
	// terminal, so interactive runs must log to a file or not at all.
	File string
	// Discard disables output entirely.
	Discard bool
}

// New builds a production JSON logger for the given options.
func New(opts Options) (*zap.Logger, error) {
	if opts.Discard {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Sampling = nil
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		l, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}
	if opts.Verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Level = level

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	} else {
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
