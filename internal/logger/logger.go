// Package logger provides structured logging configuration using log/slog.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
}

// NewLogger creates a configured slog.Logger.
func NewLogger(cfg Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
		// Add a source location for debug and error levels
		AddSource: cfg.Level <= slog.LevelDebug,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// DefaultConfig returns the default logger configuration.
// Parses the HELPABOUT_LOG_LEVEL environment variable to set the log level
// and HELPABOUT_LOG_FORMAT ("text" or "json") to pick the handler.
// Valid values: DEBUG, INFO, WARN, WARNING, ERROR
// Default: INFO
func DefaultConfig() Config {
	format := "text"
	if strings.EqualFold(os.Getenv("HELPABOUT_LOG_FORMAT"), "json") {
		format = "json"
	}

	return Config{
		Level:  ParseLevel(os.Getenv("HELPABOUT_LOG_LEVEL"), slog.LevelInfo),
		Format: format,
	}
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING and ERROR (any case) to a level.
// Anything else yields fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return fallback
	}
}
