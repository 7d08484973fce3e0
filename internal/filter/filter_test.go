package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquintal/reddiscover/internal/domain"
)

func post(id, title, snippet string) domain.Post {
	return domain.Post{ID: id, Title: title, Snippet: snippet}
}

func TestByKeywords_EmptySetIsIdentity(t *testing.T) {
	posts := []domain.Post{
		post("a", "First", "body"),
		post("b", "Second", "body"),
		post("c", "Third", "body"),
	}

	got := ByKeywords(posts, nil)

	assert.Equal(t, posts, got)
}

func TestByKeywords_MatchesTitleCaseInsensitively(t *testing.T) {
	posts := []domain.Post{
		post("a", "Async patterns in Python", ""),
		post("b", "Totally unrelated", ""),
	}

	got := ByKeywords(posts, []string{"async"})

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, []string{"async"}, got[0].KeywordsHit)
}

func TestByKeywords_MatchesSnippet(t *testing.T) {
	posts := []domain.Post{
		post("a", "Weekly thread", "anyone tried the new TYPING features?"),
	}

	got := ByKeywords(posts, []string{"typing"})

	require.Len(t, got, 1)
	assert.Equal(t, []string{"typing"}, got[0].KeywordsHit)
}

func TestByKeywords_AnyKeywordSuffices(t *testing.T) {
	posts := []domain.Post{
		post("a", "PEP 8 question", ""),
		post("b", "async question", ""),
		post("c", "nothing here", ""),
	}

	got := ByKeywords(posts, []string{"async", "pep"})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestByKeywords_PreservesInputOrder(t *testing.T) {
	posts := []domain.Post{
		post("z", "match one", ""),
		post("m", "match two", ""),
		post("a", "match three", ""),
	}

	got := ByKeywords(posts, []string{"match"})

	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].ID)
	assert.Equal(t, "m", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestByKeywords_NoMatchReturnsEmpty(t *testing.T) {
	posts := []domain.Post{post("a", "hello", "world")}

	got := ByKeywords(posts, []string{"rust"})

	assert.Empty(t, got)
}

func TestByKeywords_RecordsEveryHit(t *testing.T) {
	posts := []domain.Post{
		post("a", "async and typing in one title", ""),
	}

	got := ByKeywords(posts, []string{"async", "typing", "pep"})

	require.Len(t, got, 1)
	assert.Equal(t, []string{"async", "typing"}, got[0].KeywordsHit)
}

func TestByKeywords_DoesNotMutateInput(t *testing.T) {
	posts := []domain.Post{post("a", "async", "")}

	_ = ByKeywords(posts, []string{"async"})

	assert.Nil(t, posts[0].KeywordsHit)
}
