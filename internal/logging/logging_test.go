package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestNew_TextFormat(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	logger := New("info", "text", &buf).With("component", "store")
	logger.Info("saved tasks", "count", 2)

	out := buf.String()
	assert.Contains(t, out, "INF saved tasks")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "count=2")
}

func TestNew_TextFormatLevels(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	logger := New("warn", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN shown")
	assert.Contains(t, out, "ERR failed")
}

func TestNew_TextFormatGroups(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	logger := New("debug", "text", &buf)
	logger.WithGroup("http").Debug("request", "status", 204)
	logger.Debug("event", slog.Group("target", "part", "item", "index", 1))

	out := buf.String()
	assert.Contains(t, out, "DBG request")
	assert.Contains(t, out, "http.status=204")
	assert.Contains(t, out, "target.part=item")
	assert.Contains(t, out, "target.index=1")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New("debug", "json", &buf)
	logger.Debug("loaded", "tasks", 3)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "loaded", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, float64(3), record["tasks"])
}
