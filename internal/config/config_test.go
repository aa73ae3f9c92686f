package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Auth.CheckExpiry)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EVENTS_API_BASE_URL", "https://tickets.example.com")
	t.Setenv("EVENTS_API_TIMEOUT", "5s")
	t.Setenv("EVENTS_ACCESS_TOKEN", "abc")
	t.Setenv("EVENTS_TOKEN_CHECK_EXPIRY", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tickets.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "abc", cfg.Auth.AccessToken)
	assert.False(t, cfg.Auth.CheckExpiry)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("EVENTS_API_TIMEOUT", "soon")
	t.Setenv("EVENTS_TOKEN_CHECK_EXPIRY", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Auth.CheckExpiry)
}
