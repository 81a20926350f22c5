// ABOUTME: Logrus logger backend implementing the core Logger interface
// ABOUTME: Supports JSON or text output, level filtering and credential redaction

package logrus

import (
	"io"

	"settings-api/infrastructure/logger"

	"github.com/sirupsen/logrus"
)

// Logger implements interfaces.Logger over a logrus instance
type Logger struct {
	log *logrus.Logger
}

// New creates a logrus-backed logger writing to out.
// level is a logrus level name; format is "json" or "text".
func New(out io.Writer, level, format string) *Logger {
	l := logrus.New()
	l.SetOutput(out)

	if format == "text" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *Logger) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(logger.Redact(fields)))
}
