package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasupy/todo-myapp/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.NotEmpty(t, cfg.Database.URL)
	assert.Equal(t, 10, cfg.Database.ConnectRetries)
	assert.Equal(t, "3s", cfg.Database.ConnectBackoff.String())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TODO_SERVER_PORT", "9090")
	t.Setenv("TODO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODO_DATABASE_URL", "postgres://app:app@db:5432/app?sslmode=disable")
	t.Setenv("TODO_DATABASE_CONNECT_RETRIES", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://app:app@db:5432/app?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("TODO_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("TODO_SERVER_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}
