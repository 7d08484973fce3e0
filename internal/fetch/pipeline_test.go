package fetch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquintal/reddiscover/internal/domain"
	"github.com/mquintal/reddiscover/internal/filter"
)

// titledCollector serves a fixed listing per subreddit.
type titledCollector struct {
	listings map[string][]domain.Post
}

func (c *titledCollector) ListPosts(ctx context.Context, sub string, sort domain.Sort, limit int) ([]domain.Post, error) {
	posts, ok := c.listings[sub]
	if !ok {
		return nil, fmt.Errorf("subreddit %s is private", sub)
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (c *titledCollector) SearchPosts(ctx context.Context, sub, query string, limit int) ([]domain.Post, error) {
	return c.ListPosts(ctx, sub, domain.SortNew, limit)
}

func TestPipeline_FetchThenFilterKeepsOrder(t *testing.T) {
	col := &titledCollector{listings: map[string][]domain.Post{
		"python": {
			{ID: "p1", Title: "Async worker pools", Subreddit: "r/python"},
			{ID: "p2", Title: "Weekly job thread", Subreddit: "r/python"},
			{ID: "p3", Title: "Why ASYNC generators confuse me", Subreddit: "r/python"},
			{ID: "p4", Title: "Pandas question", Subreddit: "r/python", Snippet: "nothing relevant"},
			{ID: "p5", Title: "Plain title", Subreddit: "r/python", Snippet: "async all the way down"},
		},
	}}
	spec := domain.RequestSpec{
		Subreddits: []string{"python"},
		Limit:      10,
		Keywords:   []string{"async"},
		Sort:       domain.SortNew,
	}

	results := New(col).Run(context.Background(), spec)
	matched := filter.ByKeywords(Flatten(results), spec.Keywords)

	require.Len(t, matched, 3)
	assert.Equal(t, "p1", matched[0].ID)
	assert.Equal(t, "p3", matched[1].ID, "title match must be case-insensitive")
	assert.Equal(t, "p5", matched[2].ID, "snippet match counts too")
}

func TestPipeline_PartialFailureStillYieldsResults(t *testing.T) {
	col := &titledCollector{listings: map[string][]domain.Post{
		"golang": {
			{ID: "g1", Title: "Generics in practice", Subreddit: "r/golang"},
		},
	}}
	spec := domain.RequestSpec{
		Subreddits: []string{"privateclub", "golang"},
		Limit:      10,
		Sort:       domain.SortHot,
	}

	results := New(col).Run(context.Background(), spec)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)

	posts := Flatten(results)
	require.Len(t, posts, 1)
	assert.Equal(t, "g1", posts[0].ID)
}
