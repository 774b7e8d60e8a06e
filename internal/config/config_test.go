package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "f1-dashboard", cfg.AppName)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:3000", cfg.Address())

	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, SessionStoreCookie, cfg.Session.Store)

	assert.Equal(t, 30*time.Second, cfg.Audit.DrainInterval)
	assert.Equal(t, 50, cfg.Audit.BatchSize)
	assert.NotEmpty(t, cfg.Database.URL)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadRejectsUnknownSessionStore(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_STORE", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session store")
}

func TestLoadReadsSessionOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_COOKIE_NAME", "f1session")
	t.Setenv("SESSION_MAX_AGE", "24h")
	t.Setenv("SESSION_STORE", SessionStoreRedis)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "f1session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.True(t, cfg.IsProduction())
}

func TestGetDurationAcceptsPlainSeconds(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Context.RequestTimeout)
}
