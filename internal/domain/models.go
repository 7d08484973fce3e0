package domain

import (
	"context"
	"fmt"
	"strings"
)

// SnippetLength caps the body preview carried on a Post.
const SnippetLength = 200

// Sort is a subreddit listing order recognized by Reddit.
type Sort string

const (
	SortHot    Sort = "hot"
	SortNew    Sort = "new"
	SortTop    Sort = "top"
	SortRising Sort = "rising"
)

// ParseSort validates a user-supplied sort value.
func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortHot:
		return SortHot, nil
	case SortNew:
		return SortNew, nil
	case SortTop:
		return SortTop, nil
	case SortRising:
		return SortRising, nil
	default:
		return "", fmt.Errorf("invalid sort %q (use hot, new, top, or rising)", s)
	}
}

// RequestSpec describes one invocation. Built once by the argument parser
// and never mutated afterwards.
type RequestSpec struct {
	Subreddits []string // deduplicated case-insensitively, original order kept
	Limit      int      // per-subreddit cap, always > 0
	Query      string   // search mode when non-empty; Sort is ignored then
	Keywords   []string // lower-cased; empty means no filtering
	Sort       Sort
}

// Post is the clean, read-only projection of an upstream submission
type Post struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subreddit    string   `json:"subreddit"`
	Author       string   `json:"author"`
	Permalink    string   `json:"permalink"`
	URL          string   `json:"url"`
	Score        int      `json:"score"`
	CommentCount int      `json:"comment_count"`
	CreatedUTC   float64  `json:"created_utc"`
	Snippet      string   `json:"snippet,omitempty"`
	KeywordsHit  []string `json:"keywords_hit,omitempty"`
}

// FetchResult is the per-subreddit outcome. A failed subreddit carries its
// error here instead of aborting the run.
type FetchResult struct {
	Subreddit string
	Posts     []Post
	Err       error
}

// Collector defines the interface for data fetching. Both operations are
// bounded: the upstream request always carries limit.
type Collector interface {
	ListPosts(ctx context.Context, subreddit string, sort Sort, limit int) ([]Post, error)
	SearchPosts(ctx context.Context, subreddit, query string, limit int) ([]Post, error)
}

// Snippet collapses whitespace and truncates text to max characters,
// appending " ..." when anything was cut.
func Snippet(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= max {
		return text
	}
	return strings.TrimRight(text[:max], " ") + " ..."
}
