// ABOUTME: Setting domain model represents one configuration key/value record from the settings API
// ABOUTME: Carries the canonical shape every response format is normalized into

package domain

import "fmt"

// SettingType identifies the scope a setting applies to
type SettingType string

const (
	SettingTypeApplication    SettingType = "APPLICATION"
	SettingTypeCompany        SettingType = "COMPANY"
	SettingTypeSchedulingUnit SettingType = "SCHEDULING_UNIT"
	SettingTypeUser           SettingType = "USER"
)

// SettingTypes lists every known setting type in API order
var SettingTypes = []SettingType{
	SettingTypeApplication,
	SettingTypeCompany,
	SettingTypeSchedulingUnit,
	SettingTypeUser,
}

// ParseSettingType validates a setting type tag
func ParseSettingType(s string) (SettingType, error) {
	for _, t := range SettingTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown setting type %q", s)
}

// Setting is one configuration record.
//
// Encrypted values are opaque: they must never be decoded, whatever
// Encoded says.
type Setting struct {
	// UUID is the setting's unique identifier
	UUID string `json:"uuid"`

	// Type is the setting scope
	Type SettingType `json:"type"`

	// Key is the setting name
	Key string `json:"key"`

	// Value is the raw or decoded value
	Value string `json:"value"`

	// Encoded reports whether Value is base64 encoded
	Encoded bool `json:"encoded"`

	// Encrypted reports whether Value is encrypted
	Encrypted bool `json:"encrypted"`

	// Owner is the owning object id
	Owner int `json:"owner"`

	// Revision is the setting revision counter
	Revision int `json:"revision"`

	// Deleted marks soft-deleted settings
	Deleted bool `json:"deleted"`

	// Created and Modified are passed through verbatim from the API
	Created  string `json:"created"`
	Modified string `json:"modified"`
}
