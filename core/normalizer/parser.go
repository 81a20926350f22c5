// ABOUTME: Response normalizer turns JSON or XML settings payloads into canonical Settings
// ABOUTME: Applies the documented field coalescing and type conversion rules

package normalizer

import (
	"encoding/json"
	"strconv"

	"settings-api/core/domain"
	"settings-api/core/errors"
	"settings-api/pkg/utils/parse"
)

// uuidFields is the coalescing order for the setting id. The first field
// present with a non-empty value wins.
var uuidFields = []string{"settingUuid", "setting_uuid"}

// Parse normalizes a raw API response into settings.
//
// raw may be a string or []byte body, or an already-decoded document
// (map[string]interface{} / []interface{}). A payload with neither the
// settingDtoList shape nor the settings.setting shape yields an empty list.
// Any failure is returned as *errors.ParseError.
func Parse(raw interface{}) ([]domain.Setting, error) {
	p, err := decodePayload(raw)
	if err != nil {
		return nil, &errors.ParseError{Reason: err.Error(), Err: err}
	}

	records, err := p.records()
	if err != nil {
		return nil, &errors.ParseError{Reason: err.Error(), Err: err}
	}

	settings := make([]domain.Setting, 0, len(records))
	for _, rec := range records {
		settings = append(settings, toSetting(rec))
	}
	return settings, nil
}

func toSetting(rec record) domain.Setting {
	return domain.Setting{
		UUID:      coalesce(rec, uuidFields...),
		Type:      domain.SettingType(stringOf(rec["type"])),
		Key:       stringOf(rec["key"]),
		Value:     stringOf(rec["value"]),
		Encoded:   flag(rec["encoded"]),
		Encrypted: flag(rec["encrypted"]),
		Owner:     parse.Decimal(stringOf(rec["owner"])),
		Revision:  parse.Decimal(stringOf(rec["revision"])),
		Deleted:   isTrueString(rec["deleted"]),
		Created:   stringOf(rec["created"]),
		Modified:  stringOf(rec["modified"]),
	}
}

func coalesce(rec record, fields ...string) string {
	for _, f := range fields {
		if s := stringOf(rec[f]); s != "" {
			return s
		}
	}
	return ""
}

// flag accepts a JSON boolean or the XML text "true"
func flag(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

// isTrueString is deliberately narrow: only the string "true" counts
func isTrueString(v interface{}) bool {
	s, ok := v.(string)
	return ok && s == "true"
}

func stringOf(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := jsonAPI.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
