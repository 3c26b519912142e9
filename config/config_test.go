package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/totenbilder/database"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DATABASE_PATH",
		"DB_MAX_OPEN_CONNS", "PORT", "IMAGE_BASE_URL", "PLACEHOLDER_IMAGE_URL", "SESSION_SECRET",
		"SESSION_TTL", "COOKIE_SECURE", "CORS_ALLOWED_ORIGINS", "RECORD_CACHE_SIZE", "RECORD_CACHE_TTL",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.DatabaseConfigured())
	assert.Equal(t, database.DriverMySQL, cfg.DBDriver)
	assert.Equal(t, database.DefaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultImageBaseURL, cfg.ImageBaseURL)
	assert.Equal(t, DefaultPlaceholderURL, cfg.PlaceholderURL)
	assert.Len(t, cfg.SessionSecret, 64)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 256, cfg.RecordCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.RecordCacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigMySQL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "archive")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "totenbilder")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.DatabaseConfigured())
	assert.Equal(t, database.MySQLDSN("db", "3306", "archive", "secret", "totenbilder"), cfg.DBDSN)
	assert.Contains(t, cfg.DBDSN, "tcp(db:3306)/totenbilder")
}

func TestLoadConfigSQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DATABASE_PATH", "/var/lib/totenbilder.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, database.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/var/lib/totenbilder.db", cfg.DBDSN)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RECORD_CACHE_SIZE", "0")
	t.Setenv("DB_MAX_OPEN_CONNS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []byte("s3cret"), cfg.SessionSecret)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Zero(t, cfg.RecordCacheSize)
	assert.Equal(t, database.DefaultMaxOpenConns, cfg.MaxOpenConns)
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("COOKIE_SECURE", "maybe")
	t.Setenv("RECORD_CACHE_SIZE", "-1")
	t.Setenv("RECORD_CACHE_TTL", "-5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 256, cfg.RecordCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.RecordCacheTTL)
}
