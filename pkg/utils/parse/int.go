// ABOUTME: Lenient integer parsing for numeric fields that arrive as text
// ABOUTME: Owner and revision values come as JSON numbers or XML text

package parse

import (
	"strconv"
	"strings"
)

// Decimal reads an optionally signed run of leading base-10 digits after
// trimming surrounding whitespace, so "12abc" is 12 and "5.0" is 5.
// Input without leading digits, or out of int range, is 0.
func Decimal(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil {
		return 0
	}
	return int(v)
}
