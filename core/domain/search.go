// ABOUTME: Search domain models for literal-text matches inside setting values
// ABOUTME: Each match carries its line and a rendered context block

package domain

// SearchMatch is one matching line
type SearchMatch struct {
	// LineNumber is 1-based
	LineNumber int `json:"lineNumber"`

	// Line is the raw matching line
	Line string `json:"line"`

	// Context is the rendered block of surrounding lines, one per row,
	// the matched row prefixed with ">>> " and the others with four spaces
	Context string `json:"context"`
}

// SearchResult holds all matches in ascending line order
type SearchResult struct {
	Matches      []SearchMatch `json:"matches"`
	TotalMatches int           `json:"totalMatches"`
}
