// ABOUTME: Zap logger backend implementing the core Logger interface
// ABOUTME: Uses the production JSON encoder with credential redaction

package zap

import (
	"io"

	"settings-api/infrastructure/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements interfaces.Logger over a zap logger
type Logger struct {
	log *zap.Logger
}

// New creates a zap-backed logger writing JSON to out at the given level
func New(out io.Writer, level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(out),
		lvl,
	)

	return &Logger{log: zap.New(core)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, toZapFields(fields)...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.log.Sync()
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	redacted := logger.Redact(fields)
	out := make([]zap.Field, 0, len(redacted))
	for k, v := range redacted {
		out = append(out, zap.Any(k, v))
	}
	return out
}
