package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"strings"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Level -linecomment

type Level int

const (
	LevelOff   Level = iota // OFF
	LevelFatal              // FATAL
	LevelError              // ERROR
	LevelWarn               // WARN
	LevelInfo               // INFO
	LevelDebug              // DEBUG
	LevelTrace              // TRACE
)

var levelMap = map[string]Level{
	"OFF":   LevelOff,
	"FATAL": LevelFatal,
	"ERROR": LevelError,
	"WARN":  LevelWarn,
	"INFO":  LevelInfo,
	"DEBUG": LevelDebug,
	"TRACE": LevelTrace,
}

func ParseLevel(s string) (Level, error) {
	level, ok := levelMap[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return -1, errors.Errorf("invalid level: %s", s)
	}
	return level, nil
}

// Enables reports whether a zap entry at zl passes this threshold.
// zap has no trace level, so TRACE and DEBUG both admit debug entries.
func (l Level) Enables(zl zapcore.Level) bool {
	var needed Level
	switch {
	case zl <= zapcore.DebugLevel:
		needed = LevelDebug
	case zl == zapcore.InfoLevel:
		needed = LevelInfo
	case zl == zapcore.WarnLevel:
		needed = LevelWarn
	case zl == zapcore.ErrorLevel:
		needed = LevelError
	default:
		needed = LevelFatal
	}
	return l >= needed
}
