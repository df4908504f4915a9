package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// Empty variables count as unset.
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "SERVER_PORT", "DB_DRIVER", "DB_PATH",
		"JWT_SECRET", "JWT_EXPIRATION", "RATE_LIMIT_ENABLED", "METRICS_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "5m")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.Expiration)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "sqlite"},
			JWT:      JWTConfig{Secret: "x", Expiration: time.Minute},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.JWT.Expiration = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RateLimit = RateLimitConfig{Enabled: true}
	assert.Error(t, cfg.Validate())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "books.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN("books.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN("file:x?mode=memory"))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LogConfig{Level: "warn", Format: "json"}, "books", &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("k", "v").Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "books", line["app"])
	assert.Equal(t, "v", line["k"])
}
