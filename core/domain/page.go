// ABOUTME: Pagination models for line-oriented windows over setting values
// ABOUTME: Defines optional window bounds and the resulting page

package domain

// PageOptions bounds a pagination window. Nil means "not supplied".
type PageOptions struct {
	Limit  *int
	Offset *int
}

// Page is a window of lines over a text value
type Page struct {
	Lines      []string `json:"lines"`
	TotalLines int      `json:"totalLines"`
	HasMore    bool     `json:"hasMore"`
}
