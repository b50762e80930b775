package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 8080
  max_connections: 16
  shutdown_timeout: 3

redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

table:
  id: "lounge"
  seat_ttl: 30

security:
  allowed_origins:
    - "http://localhost:3000"
    - "https://example.com"
  message_limit:
    max_per_second: 50

client:
  server: "example.com:1780"
  name: "alice"
  sound: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Server.MaxConnections)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "lounge", cfg.Table.ID)
	assert.Len(t, cfg.Security.AllowedOrigins, 2)
	assert.Equal(t, 50, cfg.Security.MessageLimit.MaxPerSecond)
	assert.Equal(t, "example.com:1780", cfg.Client.Server)
	assert.Equal(t, "alice", cfg.Client.Name)
	assert.True(t, cfg.Client.Sound)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, 30*time.Minute, cfg.Table.SeatTTLDuration())
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, defaultHost, cfg.Server.Host)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, defaultMaxConnections, cfg.Server.MaxConnections)
	assert.Equal(t, defaultTableID, cfg.Table.ID)
	assert.Equal(t, defaultMessageLimit, cfg.Security.MessageLimit.MaxPerSecond)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr, "empty redis address selects the in-memory seat store")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, defaultClientServer, cfg.Client.Server)
	assert.Equal(t, time.Duration(defaultSeatTTL)*time.Minute, cfg.Table.SeatTTLDuration())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "env-host")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("REDIS_ADDR", "env-redis:6380")
	t.Setenv("TABLE_ID", "env-table")
	t.Setenv("CLIENT_SERVER", "env-server:1")

	cfg, err := Load(writeConfig(t, "server:\n  port: 1234\n"))
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Server.Host)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "env-redis:6380", cfg.Redis.Addr)
	assert.Equal(t, "env-table", cfg.Table.ID)
	assert.Equal(t, "env-server:1", cfg.Client.Server)
}

func TestLoadFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Default()
	assert.Equal(t, defaultPort, cfg.Server.Port)
}
