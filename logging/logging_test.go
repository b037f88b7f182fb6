package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	logger, closer, err := Setup(Config{})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, Noop(), logger)
}

func TestSetup_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := Setup(Config{Level: "debug", Dir: dir, File: "weatherpets.log"})
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info(context.Background(), "feed tick", Int("version", 3))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "weatherpets.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "feed tick")
	assert.Contains(t, string(data), "version=3")
}

func TestNew_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn", Format: "json"}).With(String("component", "geo"))

	logger.Info(context.Background(), "dropped")
	logger.Warn(context.Background(), "fetch failed", Err(errors.New("boom")))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "info is below the configured level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "fetch failed", rec["msg"])
	assert.Equal(t, "geo", rec["component"])
	assert.Equal(t, "boom", rec["error"])
}
