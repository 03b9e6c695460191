package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettarda/brett-dev/internal/theme"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, 8760*time.Hour, cfg.AnalyticsRetention)
	assert.Equal(t, theme.DefaultStorageKey, cfg.ThemeStorageKey)
	assert.Equal(t, theme.Dark, cfg.DefaultTheme())
	assert.Len(t, cfg.AnalyticsSalt, 32)
	assert.False(t, cfg.AdminEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("THEME_DEFAULT", "System")
	t.Setenv("ANALYTICS_RETENTION", "720h")
	t.Setenv("ANALYTICS_SALT", "pepper")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, theme.System, cfg.DefaultTheme())
	assert.Equal(t, 720*time.Hour, cfg.AnalyticsRetention)
	assert.Equal(t, "pepper", cfg.AnalyticsSalt)
	assert.True(t, cfg.AdminEnabled())
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	t.Setenv("THEME_DEFAULT", "sepia")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrInvalidPreference)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:               "8080",
			ThemeDefault:       "dark",
			ThemeStorageKey:    "k",
			DatabasePath:       "x.db",
			AnalyticsEnabled:   true,
			AnalyticsRetention: time.Hour,
		}
	}
	require.NoError(t, base().Validate())

	c := base()
	c.Port = ""
	assert.Error(t, c.Validate())

	c = base()
	c.AnalyticsRetention = 0
	assert.Error(t, c.Validate())

	c = base()
	c.AnalyticsEnabled = false
	c.AnalyticsRetention = 0
	assert.NoError(t, c.Validate())
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken()
	require.NoError(t, err)
	b, err := RandomToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
