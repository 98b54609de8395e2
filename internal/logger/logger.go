package logger

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"strings"
)

type Logger struct {
	sugar *zap.SugaredLogger
}

func (l *Logger) Debug(v ...any) {
	l.sugar.Debug(sprintln(v...))
}

func (l *Logger) Info(v ...any) {
	l.sugar.Info(sprintln(v...))
}

func (l *Logger) Warn(v ...any) {
	l.sugar.Warn(sprintln(v...))
}

func (l *Logger) Error(v ...any) {
	l.sugar.Error(sprintln(v...))
}

func (l *Logger) Debugf(format string, v ...any) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// sprintln keeps the space-separated formatting of log.Println without the trailing newline.
func sprintln(v ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(v...), "\n")
}

func NewLogger(level Level, output io.Writer) *Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(output),
		zap.LevelEnablerFunc(level.Enables),
	)

	return &Logger{
		sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}
