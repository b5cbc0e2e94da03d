package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeLevels(t *testing.T) {
	t.Cleanup(func() { logger = nil })

	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, Initialize(level), level)
		assert.NotNil(t, GetLogger())
	}
}

func TestInitializeEmptyIsSilent(t *testing.T) {
	t.Cleanup(func() { logger = nil })

	require.NoError(t, Initialize(""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	t.Cleanup(func() { logger = nil })

	err := Initialize("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	logger = nil
	assert.NotNil(t, GetLogger())
}

func TestHelpersWriteToLogger(t *testing.T) {
	t.Cleanup(func() { logger = nil })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debug("d")
	Info("i", zap.Int("n", 1))
	Warn("w")
	Error("e")
	Named("driver").Info("named")

	entries := logs.All()
	require.Len(t, entries, 5)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, int64(1), entries[1].ContextMap()["n"])
	assert.Equal(t, "driver", entries[4].LoggerName)
}
