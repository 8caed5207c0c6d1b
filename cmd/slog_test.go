package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "slug", "winkbed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "winkbed", entry["slug"])
}

func TestNewLogger_DebugTrimsSource(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "DEBUG")
	require.NoError(t, err)

	logger.Debug("loaded", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "cmd/slog_test.go")
	if sourceRoot != "" {
		assert.NotContains(t, out, sourceRoot)
	}
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
