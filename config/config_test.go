package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsAndEnvOverrides(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("APP_PORT", "9191")
	os.Setenv("DB_DRIVER", "sqlite")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "9191", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)

	// Untouched fields keep their defaults.
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.NotEmpty(t, cfg.Stickers)
	assert.Contains(t, cfg.Moods, "neutral")
}

func TestGetReturnsCachedConfig(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	first := Get()

	// Later env changes must not leak into the cached config.
	os.Setenv("APP_PORT", "1234")
	second := Get()
	require.Equal(t, first.AppPort, second.AppPort)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,, "))
	assert.Empty(t, splitAndTrim("  ,  "))
}
