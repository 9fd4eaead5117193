package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStoreEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_TOKEN", "")
	t.Setenv("PORT", "")
	t.Setenv("PROPOSALS_PATH", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
}

func TestLoad_Defaults(t *testing.T) {
	setStoreEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://project.supabase.co", cfg.Store.BaseURL)
	assert.Equal(t, "/rest/v1/proposals", cfg.Store.ResourcePath)
	assert.Equal(t, 30*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "anon-key", cfg.Store.BearerToken())
}

func TestLoad_Overrides(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("SUPABASE_TOKEN", "service-token")
	t.Setenv("UPSTREAM_TIMEOUT", "15")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "service-token", cfg.Store.BearerToken())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	t.Setenv("UPSTREAM_TIMEOUT", "2m")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Store.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"missing url":   {"SUPABASE_URL", ""},
		"bad url":       {"SUPABASE_URL", "not a url"},
		"missing key":   {"SUPABASE_ANON_KEY", ""},
		"bad env":       {"APP_ENV", "qa"},
		"bad port":      {"PORT", "http"},
		"relative path": {"PROPOSALS_PATH", "rest/v1/proposals"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			setStoreEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, 5*time.Second, getEnvAsDuration("SOME_TIMEOUT", 5*time.Second))
}
