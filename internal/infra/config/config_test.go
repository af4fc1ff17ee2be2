package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.True(t, cfg.HTTP.LegacyStatusCodes)
	require.Equal(t, int32(5), cfg.Storage.Postgres.MaxConns)
	require.Empty(t, cfg.Storage.Postgres.DSN)
	require.Equal(t, 5*time.Second, cfg.Storage.QueryTimeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
http:
  address: ":9090"
  legacyStatusCodes: false
  cors:
    allowedOrigins: ["https://example.com"]
storage:
  queryTimeout: 2s
  postgres:
    dsn: "postgres://file"
    maxConns: 8
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.False(t, cfg.HTTP.LegacyStatusCodes)
	require.Equal(t, []string{"https://example.com"}, cfg.HTTP.CORS.AllowedOrigins)
	require.Equal(t, 2*time.Second, cfg.Storage.QueryTimeout)
	require.Equal(t, "postgres://env", cfg.Storage.Postgres.DSN)
	require.Equal(t, int32(8), cfg.Storage.Postgres.MaxConns)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.HTTP.CORS.AllowedOrigins = []string{"example.com"}
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Storage.Postgres.MaxConns = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Storage.Postgres.MinConns = 9
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.BasePath = "api"
	require.Error(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	require.Nil(t, splitList(" , "))
}
