// ABOUTME: Query identifies which settings of a company to fetch from an environment
// ABOUTME: Validated before any request is built

package settings

import (
	"strconv"
	"strings"

	"settings-api/core/domain"
	"settings-api/core/errors"
)

// Query selects settings of one company in one environment
type Query struct {
	Environment domain.Environment
	CompanyID   string

	// Optional upstream filters
	KeyName     string
	Type        string
	Owner       string
	ChildObject string
}

// Validate checks the query before it is sent upstream
func (q Query) Validate() error {
	if !q.Environment.Valid() {
		return &errors.ValidationError{Field: "environment", Message: "must be one of pd, in, ac"}
	}

	companyID := strings.TrimSpace(q.CompanyID)
	if companyID == "" {
		return &errors.ValidationError{Field: "companyId", Message: "company ID is required"}
	}
	if _, err := strconv.ParseUint(companyID, 10, 64); err != nil {
		return &errors.ValidationError{Field: "companyId", Message: "company ID must be numeric"}
	}

	if q.Type != "" {
		if _, err := domain.ParseSettingType(q.Type); err != nil {
			return &errors.ValidationError{Field: "type", Message: err.Error()}
		}
	}

	if q.Owner != "" {
		if _, err := strconv.ParseInt(strings.TrimSpace(q.Owner), 10, 64); err != nil {
			return &errors.ValidationError{Field: "owner", Message: "owner must be numeric"}
		}
	}

	return nil
}

// params returns the upstream query parameters; empty values are dropped by the executor
func (q Query) params() map[string]string {
	return map[string]string{
		"key-name":     q.KeyName,
		"type":         q.Type,
		"owner":        strings.TrimSpace(q.Owner),
		"child-object": q.ChildObject,
	}
}
