package logging

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/reflectd/internal/config"
)

func TestNew(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(config.LoggingConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "verbose", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestIsTerminalSyncError(t *testing.T) {
	assert.True(t, isTerminalSyncError(syscall.EINVAL))
	assert.True(t, isTerminalSyncError(syscall.ENOTTY))
	assert.False(t, isTerminalSyncError(syscall.EACCES))
	assert.False(t, isTerminalSyncError(assert.AnError))
}
