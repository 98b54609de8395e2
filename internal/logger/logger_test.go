package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	level, err = ParseLevel(" Error ")
	require.NoError(t, err)
	assert.Equal(t, LevelError, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "OFF", LevelOff.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestLevelEnables(t *testing.T) {
	assert.False(t, LevelOff.Enables(zapcore.ErrorLevel))
	assert.True(t, LevelError.Enables(zapcore.ErrorLevel))
	assert.False(t, LevelError.Enables(zapcore.WarnLevel))
	assert.True(t, LevelInfo.Enables(zapcore.WarnLevel))
	assert.False(t, LevelInfo.Enables(zapcore.DebugLevel))
	assert.True(t, LevelTrace.Enables(zapcore.DebugLevel))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelInfo, &buf)

	l.Debug("hidden", 1)
	l.Info("insert:", "added", 3, "items")
	l.Errorf("sell: item %d not found", 1002)
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "insert: added 3 items")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "sell: item 1002 not found")
	assert.Contains(t, out, "ERROR")
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens")
	assert.NoError(t, l.Sync())
}
