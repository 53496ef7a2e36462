package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment variables read by the maze command
const (
	// EnvLogLevel sets the log level when the -log-level flag is not given
	EnvLogLevel = "MAZE_LOG_LEVEL"
)

// StdinPath is the path argument that makes the loader read standard input
const StdinPath = "-"

// Config represents the simulator configuration
type Config struct {
	// Path is the file holding the offsets, one signed integer per line
	Path string `json:"path"`

	// LogLevel is the minimum level written to stderr
	LogLevel slog.Level `json:"logLevel"`

	// MaxSteps stops the simulation after this many jumps (0 means unlimited)
	MaxSteps uint64 `json:"maxSteps"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Path:     "",
		LogLevel: slog.LevelWarn, // Keep stderr quiet on a successful run
		MaxSteps: 0,
	}
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog.Level
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
