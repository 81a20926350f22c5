// ABOUTME: Shared helpers for logger backends: credential redaction and output sinks
// ABOUTME: Redaction masks sensitive field values before any backend serializes them

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"settings-api/core/domain"

	"gopkg.in/natefinch/lumberjack.v2"
)

var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"authorization": {},
	"password":      {},
	"secret":        {},
}

// Redact returns a copy of fields with sensitive values replaced by their masked preview.
// Nested maps are redacted as well.
func Redact(fields map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return fields
	}

	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
			out[k] = domain.MaskToken(fmt.Sprint(v))
			continue
		}
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = Redact(nested)
			continue
		}
		if nested, ok := v.(map[string]string); ok {
			out[k] = redactStrings(nested)
			continue
		}
		out[k] = v
	}
	return out
}

func redactStrings(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
			out[k] = domain.MaskToken(v)
			continue
		}
		out[k] = v
	}
	return out
}

// Output returns a rotating file writer for path, or stdout when path is empty
func Output(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}
