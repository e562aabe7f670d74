package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, SessionStoreSQL, cfg.Database.SessionStore)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 168*time.Hour, cfg.Estimate.TTL)
	assert.Equal(t, 768, cfg.LLM.EmbeddingDimension)
	assert.Equal(t, time.Second, cfg.LLM.EmbedInterval)
	assert.False(t, cfg.LLM.Enabled())
	assert.False(t, cfg.APIKeyRequired)
}

func TestLoad_PostgresRequiresConnectionString(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("POSTGRES_CONNECTION_STRING", "")

	_, err := Load()
	assert.True(t, errors.Is(err, ErrMissingConnectionString))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("POSTGRES_CONNECTION_STRING", "postgres://u:p@localhost:5432/db")
	t.Setenv("SESSION_STORE", "DynamoDB")
	t.Setenv("PORT", "3001")
	t.Setenv("API_RATE_LIMIT", "5")
	t.Setenv("API_RATE_LIMIT_WINDOW_MS", "1000")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("API_KEY_REQUIRED", "yes")
	t.Setenv("EMBED_INTERVAL_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, SessionStoreDynamoDB, cfg.Database.SessionStore)
	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.True(t, cfg.LLM.Enabled())
	assert.True(t, cfg.APIKeyRequired)
	assert.Zero(t, cfg.LLM.EmbedInterval)
}

func TestValidate_Rejects(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:       "development",
			Database:  DatabaseConfig{Driver: DriverSQLite, SessionStore: SessionStoreSQL},
			RateLimit: RateLimitConfig{Max: 1, Window: time.Second},
			LLM:       LLMConfig{EmbeddingDimension: 768},
		}
	}

	c := base()
	c.Env = "staging"
	assert.ErrorIs(t, c.Validate(), ErrUnknownEnvironment)

	c = base()
	c.Database.Driver = "mysql"
	assert.ErrorIs(t, c.Validate(), ErrUnknownDatabaseDriver)

	c = base()
	c.Database.SessionStore = "redis"
	assert.ErrorIs(t, c.Validate(), ErrUnknownSessionStore)

	c = base()
	c.RateLimit.Max = 0
	assert.Error(t, c.Validate())

	assert.NoError(t, base().Validate())
}
