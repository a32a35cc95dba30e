package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, WARN)

	log.Info("hidden %d", 1)
	log.Warn("booking id=%s not found", "abc")
	log.Error("save failed: %v", "disk full")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "booking id=abc not found")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "save failed: disk full")
}

func TestLogger_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "")

	log.Debug("debug line")
	log.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, INFO)
	require.NoError(t, err)

	log.Info("started on port %d", 8080)
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started on port 8080")
}
