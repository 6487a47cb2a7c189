package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer

	logger, closeFn, err := New(&buf, "warn", "")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, closeFn())
	}()

	logger.Info("hidden")
	logger.Warn("shown", "entry_id", 7)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "entry_id=7")
}

func TestNew_FanoutToFile(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "fieldops.log")

	logger, closeFn, err := New(&buf, "info", logFile)
	require.NoError(t, err)

	logger.Info("Drain completed", "synced", 2)
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "Drain completed")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "Drain completed", record["msg"])
	assert.Equal(t, float64(2), record["synced"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, "loud", "")
	assert.Error(t, err)
}
