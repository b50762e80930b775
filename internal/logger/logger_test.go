package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDir_WritesToNamedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitDir(dir, "client"))
	t.Cleanup(Close)

	assert.Equal(t, filepath.Join(dir, "client.log"), GetLogPath())

	LogInfo("hello %d", 42)
	LogError("boom")
	LogPanic("recovered")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello 42")
	assert.Contains(t, string(data), "[ERROR] boom")
	assert.Contains(t, string(data), "[PANIC] recovered")
}

func TestInitDir_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o644))

	require.NoError(t, InitDir(dir, "server"))
	t.Cleanup(Close)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))

	backups, err := filepath.Glob(filepath.Join(dir, "server.log.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}
