// internal/utils/logging.go
package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFileMode = 0644
)

var Logger = zap.NewNop()

// Init configures zap to write to the console and, when logFile is set, to a JSON log file.
// The level is taken from `LOG_LEVEL` and falls back to info.
func Init(logFile string) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := ParseLevel(os.Getenv("LOG_LEVEL"))

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", logFile, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Logger.Debug("logging initialized", zap.String("log_level", level.String()))

	return nil
}

// ParseLevel turns a textual level into a zap level. Unknown or empty values yield info.
func ParseLevel(text string) zapcore.Level {
	if text == "" {
		return zapcore.InfoLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown LOG_LEVEL '%s', defaulting to 'info'\n", text)
		return zapcore.InfoLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return nil
	}
	return Logger.With(zap.String(FieldComponent, component))
}
