// ============================================================================
// stringkit - String and pattern utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating component loggers from config
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/stringkit/foundation/core/log"
	"github.com/msto63/stringkit/pkg/core/config"
	"github.com/msto63/stringkit/pkg/core/version"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, used as the logger name
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format (json, text, console, logfmt; default: json)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// EnableCaller adds file:line to every entry
	EnableCaller bool
}

// NewLogger creates a logger tagged with the library version. Unknown
// level or format strings fall back to info and json.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatJSON
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithField("version", version.Library)
}

// FromConfig creates a logger for component using the [general] section.
// The logger name is "<general.name>.<component>".
func FromConfig(cfg *config.Config, component string) *mdwlog.Logger {
	if cfg == nil {
		cfg = config.Default()
	}

	name := cfg.General.Name
	if component != "" {
		name = strings.TrimSuffix(name, ".") + "." + component
	}

	return NewLogger(LoggerConfig{
		Name:   name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
	})
}
