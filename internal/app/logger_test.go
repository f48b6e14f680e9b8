package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula/nebula-backend/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"}).Info("task created", slog.String("task_id", "42"))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "42", m["task_id"])
	assert.NotContains(t, m, "source")
}

func TestNewLogger_TextFormatShortSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "debug", Format: "text"}).Debug("source test")

	out := buf.String()
	assert.Contains(t, out, `msg="source test"`)
	assert.Contains(t, out, "source=app/logger_test.go:")
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	assert.Same(t, logger.Handler(), slog.Default().Handler())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLogger_SuppressesBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Log(context.Background(), slog.LevelInfo, "dropped")
	assert.Zero(t, buf.Len())

	logger.Log(context.Background(), slog.LevelWarn, "kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}
