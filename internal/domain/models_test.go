package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort_Valid(t *testing.T) {
	cases := map[string]Sort{
		"hot":    SortHot,
		"new":    SortNew,
		"top":    SortTop,
		"rising": SortRising,
		"HOT":    SortHot,
		" new ":  SortNew,
	}
	for in, want := range cases {
		got, err := ParseSort(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseSort_Invalid(t *testing.T) {
	for _, in := range []string{"banana", "", "hotttest", "relevance"} {
		_, err := ParseSort(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestSnippet_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello world", Snippet("hello world", 50))
}

func TestSnippet_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Snippet("a\n\n  b\t c", 50))
}

func TestSnippet_TruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("word ", 100)

	got := Snippet(long, 20)

	assert.True(t, strings.HasSuffix(got, " ..."))
	assert.LessOrEqual(t, len(got), 20+len(" ..."))
}

func TestSnippet_EmptyText(t *testing.T) {
	assert.Equal(t, "", Snippet("", 20))
	assert.Equal(t, "", Snippet("   \n\t ", 20))
}
