// Package logger builds the zap loggers used by the runner and the stream service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a production sugared logger tagged with the service name.
// It falls back to a no-op logger if zap cannot build its sinks.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel)
}

// NewWithLevel is New with an explicit minimum level.
func NewWithLevel(service string, level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build(zap.AddCaller())
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}

// ParseLevel converts a textual level ("debug", "info", ...) into a zap level.
// An empty string yields the info level.
func ParseLevel(text string) (zapcore.Level, error) {
	if text == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(text)
}
