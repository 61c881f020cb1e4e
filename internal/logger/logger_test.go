package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" Warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelError},
		{"verbose", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, slog.LevelError))
		})
	}
}

func TestDefaultConfig_Env(t *testing.T) {
	t.Setenv("HELPABOUT_LOG_LEVEL", "debug")
	t.Setenv("HELPABOUT_LOG_FORMAT", "JSON")

	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv("HELPABOUT_LOG_LEVEL", "")
	t.Setenv("HELPABOUT_LOG_FORMAT", "")

	cfg = DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}
