package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/rasterkernels/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.Config{LogLevel: "info", LogFormat: "json"})

	logger.Debug("hidden")
	logger.Info("shown", "kernel", "SOBEL_VERTICAL")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "SOBEL_VERTICAL", entry["kernel"])
}

func TestNewLogger_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.Config{LogLevel: "warn", LogFormat: "text"})

	logger.Info("quiet")
	logger.Warn("loud")
	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "msg=loud")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}
