package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields holds structured log fields
type Fields map[string]any

// Logger is the structured logging interface used across the toolkit
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// zapLogger implements Logger on top of a zap.SugaredLogger
type zapLogger struct {
	base *zap.SugaredLogger
}

// NewLogger creates a logger at the given level (debug, info, warn, error)
func NewLogger(level string) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		parseLevel(level),
	)

	return &zapLogger{base: zap.New(core).Sugar()}
}

// NewDefaultLogger creates a logger at info level
func NewDefaultLogger() Logger {
	return NewLogger("info")
}

// WithFields returns the default logger scoped with the given fields
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Fields) {
	l.base.Errorw(msg, flatten(fields)...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{base: l.base.With(flatten([]Fields{fields})...)}
}

// flatten converts Fields maps into zap's alternating key/value form
func flatten(fields []Fields) []any {
	var kv []any
	for _, f := range fields {
		for k, v := range f {
			kv = append(kv, k, v)
		}
	}
	return kv
}
