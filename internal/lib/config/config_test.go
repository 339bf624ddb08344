package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"credopass/internal/lib/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadPath_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: prod\nhttp_server:\n  address: \":9090\"\n"), 0o600))

	cfg := config.MustLoadPath(path)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
	assert.Equal(t, "/api/core", cfg.HTTPServer.BasePath)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, 10, cfg.Loyalty.PointsPerCheckin)
	assert.Equal(t, 30*time.Second, cfg.Redis.CheckinLockTTL)
	assert.Equal(t, "http://localhost:8080", cfg.Client.Host)
	assert.Equal(t, "/api/core", cfg.Client.BaseURL)
}

func TestMustLoadPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: local\nhttp_server:\n  address: \":8080\"\n"), 0o600))

	t.Setenv("DATABASE_URL", "postgres://example/db")
	t.Setenv("API_BASE_URL", "http://api.example.com/api/core")

	cfg := config.MustLoadPath(path)

	assert.Equal(t, "postgres://example/db", cfg.DatabaseURL)
	assert.Equal(t, "http://api.example.com/api/core", cfg.Client.BaseURL)
}

func TestMustLoadPath_MissingFile(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
