package search

import (
	"strings"
	"testing"

	"settings-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_MatchesWithContext(t *testing.T) {
	result, err := Search("a\nfoo\nb\nfoo\nc", "foo", 1)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalMatches)
	require.Len(t, result.Matches, 2)

	first := result.Matches[0]
	assert.Equal(t, 2, first.LineNumber)
	assert.Equal(t, "foo", first.Line)
	assert.Equal(t, "    1: a\n>>> 2: foo\n    3: b", first.Context)
	assert.Len(t, strings.Split(first.Context, "\n"), 3)

	second := result.Matches[1]
	assert.Equal(t, 4, second.LineNumber)
	assert.Equal(t, "    3: b\n>>> 4: foo\n    5: c", second.Context)
	assert.Len(t, strings.Split(second.Context, "\n"), 3)
}

func TestSearch_LiteralMetacharacters(t *testing.T) {
	value := "a.b(\naxb(\na.b\nprefix a.b( suffix"

	result, err := Search(value, "a.b(", 0)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalMatches)
	assert.Equal(t, 1, result.Matches[0].LineNumber)
	assert.Equal(t, 4, result.Matches[1].LineNumber)
}

func TestSearch_OtherMetacharacters(t *testing.T) {
	terms := []string{"*", "[x]", "$1", "^start", "a|b", `\d`, "{2}"}
	for _, term := range terms {
		value := "nothing here\nliteral " + term + " inside\nnothing"
		result, err := Search(value, term, 0)
		require.NoError(t, err, term)
		assert.Equal(t, 1, result.TotalMatches, term)
		assert.Equal(t, 2, result.Matches[0].LineNumber, term)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	result, err := Search("Timezone=UTC\ntimezone=CET\nlocale=en", "TIMEZONE", 0)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalMatches)
}

func TestSearch_MultipleOccurrencesCountOnce(t *testing.T) {
	result, err := Search("foo foo foo\nbar", "foo", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalMatches)
	assert.Equal(t, ">>> 1: foo foo foo", result.Matches[0].Context)
}

func TestSearch_DefaultContextClampedAtEdges(t *testing.T) {
	value := "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8"

	result, err := Search(value, "l1", DefaultContextLines)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, ">>> 1: l1\n    2: l2\n    3: l3\n    4: l4", result.Matches[0].Context)

	result, err = Search(value, "l8", DefaultContextLines)
	require.NoError(t, err)
	assert.Equal(t, "    5: l5\n    6: l6\n    7: l7\n>>> 8: l8", result.Matches[0].Context)
}

func TestSearch_NoMatches(t *testing.T) {
	result, err := Search("a\nb", "zzz", 3)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalMatches)
	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
}

func TestSearch_EmptyTerm(t *testing.T) {
	_, err := Search("a", "", 3)

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestSearch_NegativeContext(t *testing.T) {
	result, err := Search("a\nfoo\nb", "foo", -2)

	require.NoError(t, err)
	assert.Equal(t, ">>> 2: foo", result.Matches[0].Context)
}
