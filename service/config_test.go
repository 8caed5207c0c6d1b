package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "8000", config.Port)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 120*time.Second, config.AI.Timeout)
	assert.Equal(t, 30, config.Import.RequestsPerMinute)
	assert.False(t, config.Cookie.Secure)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("BASE_URL", "https://picks.example.com/")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.IsProduction())
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "hunter2", config.Admin.Password)
	assert.Equal(t, "https://picks.example.com", config.BaseURL)
	assert.True(t, config.Cookie.Secure, "production defaults to secure cookies")
}

func TestLoadConfig_CookieSecureOverride(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("COOKIE_SECURE", "false")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, config.Cookie.Secure)
}
