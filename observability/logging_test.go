package observability

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/automoto/doomerang-rogue/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, logger)
	}
}

func TestNewLogger_LevelIsApplied(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_Rejects(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "verbose", Format: "json"})
	assert.Error(t, err)
	_, err = NewLogger(config.LoggingConfig{Level: "info", Format: "logfmt"})
	assert.Error(t, err)
}

func TestForRun_AddsField(t *testing.T) {
	id := uuid.New()
	logger := ForRun(zap.NewNop(), id)
	assert.NotNil(t, logger)
}
