package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 24, cfg.Redis.ResultTTLHours)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)

	assert.Equal(t, "cardiffnlp/twitter-xlm-roberta-base-sentiment", cfg.Model.Name)
	assert.Equal(t, "lexicon", cfg.Model.Mode)

	assert.Equal(t, 512, cfg.Limits.MaxTextLength)
	assert.Equal(t, 100, cfg.Limits.MaxBatchSize)
	assert.Equal(t, 10, cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, 8, cfg.Limits.Workers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SENTIMENT_SERVER_PORT", "9090")
	t.Setenv("SENTIMENT_AUTH_SECRET_KEY", "env-secret")
	t.Setenv("SENTIMENT_MODEL_MODE", "remote")
	t.Setenv("SENTIMENT_LIMITS_MAX_BATCH_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Auth.SecretKey)
	assert.Equal(t, "remote", cfg.Model.Mode)
	assert.Equal(t, 50, cfg.Limits.MaxBatchSize)
}

func TestDerivedValues(t *testing.T) {
	t.Run("token TTL", func(t *testing.T) {
		c := AuthConfig{TokenTTLMinutes: 30}
		assert.Equal(t, 30*time.Minute, c.TokenTTL())
	})

	t.Run("model timeout", func(t *testing.T) {
		c := ModelConfig{TimeoutSeconds: 15}
		assert.Equal(t, 15*time.Second, c.Timeout())
	})

	t.Run("file size in bytes", func(t *testing.T) {
		c := LimitsConfig{MaxFileSizeMB: 10}
		assert.Equal(t, int64(10*1024*1024), c.MaxFileSizeBytes())
	})

	t.Run("result cache TTL", func(t *testing.T) {
		c := RedisConfig{ResultTTLHours: 24}
		assert.Equal(t, 24*time.Hour, c.ResultTTL())
	})
}
