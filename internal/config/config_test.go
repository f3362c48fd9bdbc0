package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every env var the config reads, for cleanup.
var configEnvVars = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"TIMEOUT_PER_PROVIDER",
	"FLIGHT_API_BASE_URL", "HOTEL_API_BASE_URL", "TRAVEL_API_KEY",
	"DEFAULT_CURRENCY", "DEFAULT_MARKET", "DEFAULT_COUNTRY_CODE", "DEFAULT_LANGUAGE",
	"SESSION_BACKEND", "SESSION_REDIS_ADDR", "SESSION_REDIS_PASSWORD", "SESSION_REDIS_DB", "SESSION_TTL",
	"LOG_LEVEL", "LOG_FORMAT", "APP_ENV",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v) // registers restore
			os.Unsetenv(key)
		}
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	assert.Equal(t, "5s", cfg.Search.ProviderTimeout.String(), "default provider timeout")

	assert.Equal(t, "https://sky-scrapper.p.rapidapi.com", cfg.Providers.FlightBaseURL)
	assert.Equal(t, "https://booking-com15.p.rapidapi.com", cfg.Providers.HotelBaseURL)
	assert.Equal(t, "USD", cfg.Providers.Currency)

	assert.Equal(t, "memory", cfg.Session.Backend, "default session backend")
	assert.Equal(t, "30m0s", cfg.Session.TTL.String(), "default session TTL")

	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":          "3000",
		"TIMEOUT_PER_PROVIDER": "3s",
		"SESSION_BACKEND":      "redis",
		"SESSION_REDIS_ADDR":   "redis:6380",
		"SESSION_TTL":          "1h",
		"DEFAULT_CURRENCY":     "NGN",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
		"APP_ENV":              "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "3s", cfg.Search.ProviderTimeout.String())
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "redis:6380", cfg.Session.RedisAddr)
	assert.Equal(t, "1h0m0s", cfg.Session.TTL.String())
	assert.Equal(t, "NGN", cfg.Providers.Currency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

// TestLoad_ValidationErrors tests that invalid values are rejected.
func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "port too small", vars: map[string]string{"SERVER_PORT": "0"}},
		{name: "port too large", vars: map[string]string{"SERVER_PORT": "70000"}},
		{name: "zero provider timeout", vars: map[string]string{"TIMEOUT_PER_PROVIDER": "0s"}},
		{name: "unknown session backend", vars: map[string]string{"SESSION_BACKEND": "postgres"}},
		{name: "zero session TTL", vars: map[string]string{"SESSION_TTL": "0s"}},
		{name: "empty currency", vars: map[string]string{"DEFAULT_CURRENCY": ""}},
		{name: "bad log level", vars: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "bad log format", vars: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "bad app env", vars: map[string]string{"APP_ENV": "qa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
