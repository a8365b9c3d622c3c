package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/reviewpulse/sentiment-api/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console format", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		log, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}
