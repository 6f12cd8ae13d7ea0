package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"thirdcoast.systems/rasterkernels/internal/config"
)

// NewLogger builds a slog.Logger for the configured level and format.
func NewLogger(w io.Writer, conf config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(conf.LogLevel)}
	if strings.EqualFold(conf.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs the configured logger as the slog default, writing to stderr.
func Setup(conf config.Config) *slog.Logger {
	logger := NewLogger(os.Stderr, conf)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
