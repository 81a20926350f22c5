// ABOUTME: Request DTOs for settings endpoints
// ABOUTME: Path and query parameters shared by list, value and search operations

package requests

import (
	"settings-api/core/domain"
	"settings-api/core/settings"
)

// SettingsParams identifies a company's settings in one environment
type SettingsParams struct {
	Environment string `path:"env" enum:"pd,in,ac" doc:"Target environment"`
	CompanyID   string `path:"companyId" pattern:"^[0-9]+$" doc:"Numeric company ID"`

	KeyName     string `query:"key-name" doc:"Only settings with this key"`
	Type        string `query:"type" doc:"Setting type: APPLICATION, COMPANY, SCHEDULING_UNIT or USER"`
	Owner       string `query:"owner" doc:"Numeric owner ID"`
	ChildObject string `query:"child-object" doc:"Upstream child-object filter"`
}

// ToQuery converts the parameters to a service query
func (p SettingsParams) ToQuery() settings.Query {
	return settings.Query{
		Environment: domain.Environment(p.Environment),
		CompanyID:   p.CompanyID,
		KeyName:     p.KeyName,
		Type:        p.Type,
		Owner:       p.Owner,
		ChildObject: p.ChildObject,
	}
}

// KeyParams identifies a single setting by key
type KeyParams struct {
	Environment string `path:"env" enum:"pd,in,ac" doc:"Target environment"`
	CompanyID   string `path:"companyId" pattern:"^[0-9]+$" doc:"Numeric company ID"`
	Key         string `path:"key" doc:"Setting key"`

	Type  string `query:"type" doc:"Setting type: APPLICATION, COMPANY, SCHEDULING_UNIT or USER"`
	Owner string `query:"owner" doc:"Numeric owner ID"`
}

// ToQuery converts the parameters to a service query narrowed to the key
func (p KeyParams) ToQuery() settings.Query {
	return settings.Query{
		Environment: domain.Environment(p.Environment),
		CompanyID:   p.CompanyID,
		KeyName:     p.Key,
		Type:        p.Type,
		Owner:       p.Owner,
	}
}

// PageParams bounds a value window. -1 means "not supplied".
type PageParams struct {
	Limit  int `query:"limit" default:"-1" minimum:"-1" doc:"Maximum number of lines; omit for all"`
	Offset int `query:"offset" default:"-1" minimum:"-1" doc:"Zero-based first line; omit for 0"`
}

// ToPageOptions converts the parameters to pagination options
func (p PageParams) ToPageOptions() domain.PageOptions {
	var opts domain.PageOptions
	if p.Limit >= 0 {
		limit := p.Limit
		opts.Limit = &limit
	}
	if p.Offset >= 0 {
		offset := p.Offset
		opts.Offset = &offset
	}
	return opts
}

// SearchParams holds the search term and context size
type SearchParams struct {
	Term         string `query:"term" required:"true" minLength:"1" doc:"Literal text to look for, case-insensitive"`
	ContextLines int    `query:"context-lines" default:"3" minimum:"0" maximum:"100" doc:"Lines of context on each side of a match"`
}
