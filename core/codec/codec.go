// ABOUTME: Value codec conditionally decodes base64 setting values
// ABOUTME: Best-effort: encrypted or unflagged values and undecodable input pass through untouched

package codec

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"settings-api/core/domain"
	"settings-api/core/errors"
)

// Decode returns s with its value base64-decoded when the setting is
// flagged encoded and not encrypted. It never fails: a value that does not
// decode is returned as is.
func Decode(s domain.Setting) domain.Setting {
	if s.Encrypted || !s.Encoded {
		return s
	}

	decoded, err := decodeValue(s.Key, s.Value)
	if err != nil {
		return s
	}

	s.Value = decoded
	return s
}

// DecodeAll applies Decode to every setting
func DecodeAll(settings []domain.Setting) []domain.Setting {
	out := make([]domain.Setting, len(settings))
	for i, s := range settings {
		out[i] = Decode(s)
	}
	return out
}

func decodeValue(key, value string) (string, error) {
	compact := strings.Join(strings.Fields(value), "")

	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		var rawErr error
		raw, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(compact, "="))
		if rawErr != nil {
			return "", &errors.DecodeError{Key: key, Err: err}
		}
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
}

// IsBase64 reports whether text round-trips exactly through base64 decode
// and re-encode. It is a format sniffing aid and does not gate Decode.
func IsBase64(text string) bool {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(raw) == text
}
