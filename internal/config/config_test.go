package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
	assert.False(t, cfg.CircuitBreakerEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://store.example.com")
	t.Setenv("CIRCUIT_BREAKER_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://store.example.com", cfg.APIBaseURL)
	assert.True(t, cfg.CircuitBreakerEnabled)
}

func TestLoad_RejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "not-a-url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API base URL")
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP timeout")
}
