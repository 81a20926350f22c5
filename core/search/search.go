// ABOUTME: Search engine finds literal-text matches line by line inside a setting value
// ABOUTME: Every match is returned with a rendered block of surrounding context lines

package search

import (
	"fmt"
	"regexp"
	"strings"

	"settings-api/core/domain"
	"settings-api/core/errors"
)

// DefaultContextLines is the number of lines shown on each side of a match
const DefaultContextLines = 3

const (
	matchMarker   = ">>> "
	contextMarker = "    "
)

// Search returns every line of value containing term, case-insensitively.
// term is always matched as literal text.
//
// Callers must not search encrypted settings.
func Search(value, term string, contextLines int) (domain.SearchResult, error) {
	if term == "" {
		return domain.SearchResult{}, &errors.ValidationError{Field: "term", Message: "search term cannot be empty"}
	}
	if contextLines < 0 {
		contextLines = 0
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return domain.SearchResult{}, &errors.ValidationError{Field: "term", Message: err.Error()}
	}

	lines := strings.Split(value, "\n")
	last := len(lines) - 1

	result := domain.SearchResult{Matches: []domain.SearchMatch{}}
	for i, line := range lines {
		if !pattern.MatchString(line) {
			continue
		}

		from := max(0, i-contextLines)
		to := min(last, i+contextLines)

		result.Matches = append(result.Matches, domain.SearchMatch{
			LineNumber: i + 1,
			Line:       line,
			Context:    renderContext(lines, from, to, i),
		})
	}

	result.TotalMatches = len(result.Matches)
	return result, nil
}

// renderContext renders lines[from..to] with 1-based numbers, marking hit
func renderContext(lines []string, from, to, hit int) string {
	var b strings.Builder
	for j := from; j <= to; j++ {
		marker := contextMarker
		if j == hit {
			marker = matchMarker
		}
		if j > from {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s%d: %s", marker, j+1, lines[j])
	}
	return b.String()
}
