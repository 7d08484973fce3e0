package fetch

import (
	"context"
	"log/slog"

	"github.com/mquintal/reddiscover/internal/domain"
)

// Fetcher issues one bounded request per subreddit, strictly in order.
// A run is only ever a handful of requests, so there is no fan-out.
type Fetcher struct {
	collector domain.Collector
}

func New(c domain.Collector) *Fetcher {
	return &Fetcher{collector: c}
}

// Run fetches every subreddit in the spec and returns one FetchResult per
// subreddit, in spec order. A failing subreddit (private, banned, missing)
// is reported in its result and does not stop the remaining fetches.
func (f *Fetcher) Run(ctx context.Context, spec domain.RequestSpec) []domain.FetchResult {
	results := make([]domain.FetchResult, 0, len(spec.Subreddits))
	for _, sub := range spec.Subreddits {
		var (
			posts []domain.Post
			err   error
		)
		if spec.Query != "" {
			slog.Info("searching subreddit", "sub", sub, "query", spec.Query, "limit", spec.Limit)
			posts, err = f.collector.SearchPosts(ctx, sub, spec.Query, spec.Limit)
		} else {
			slog.Info("fetching subreddit", "sub", sub, "sort", spec.Sort, "limit", spec.Limit)
			posts, err = f.collector.ListPosts(ctx, sub, spec.Sort, spec.Limit)
		}
		if err != nil {
			slog.Warn("subreddit fetch failed, continuing", "sub", sub, "err", err)
		}
		results = append(results, domain.FetchResult{Subreddit: sub, Posts: posts, Err: err})
	}
	return results
}

// Flatten concatenates the successful posts in result order.
func Flatten(results []domain.FetchResult) []domain.Post {
	var posts []domain.Post
	for _, r := range results {
		posts = append(posts, r.Posts...)
	}
	return posts
}
