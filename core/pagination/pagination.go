// ABOUTME: Pagination utilities for line-oriented setting values
// ABOUTME: Splits text on newlines and returns a bounded window with metadata

package pagination

import (
	"strings"

	"settings-api/core/domain"
)

// Paginate returns a window of the lines of value.
//
// With neither Limit nor Offset supplied every line is returned. Otherwise
// the window is [offset, offset+limit), or [offset, end) when Limit is nil.
func Paginate(value string, opts domain.PageOptions) domain.Page {
	lines := strings.Split(value, "\n")
	total := len(lines)

	if opts.Limit == nil && opts.Offset == nil {
		return domain.Page{
			Lines:      lines,
			TotalLines: total,
			HasMore:    false,
		}
	}

	start := 0
	if opts.Offset != nil && *opts.Offset > 0 {
		start = *opts.Offset
	}

	if start >= total {
		return domain.Page{Lines: []string{}, TotalLines: total, HasMore: false}
	}

	// limit is compared against the remaining lines so start+limit never overflows
	end := total
	if opts.Limit != nil {
		limit := *opts.Limit
		if limit < 0 {
			limit = 0
		}
		if limit < total-start {
			end = start + limit
		}
	}

	return domain.Page{
		Lines:      lines[start:end],
		TotalLines: total,
		HasMore:    end < total,
	}
}

// Int returns a pointer to v, for building PageOptions
func Int(v int) *int {
	return &v
}
