package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/mquintal/reddiscover/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient talks to the authenticated Reddit API through the go-reddit
// wrapper, which owns HTTP transport, OAuth token lifecycle, and rate-limit
// backoff. The session is read-only: no vote, post, or comment calls exist
// on this type.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(id, secret, user, pass, userAgent string) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, err
	}

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

func (ac *APIClient) ListPosts(ctx context.Context, sub string, sort domain.Sort, limit int) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var (
		posts []*reddit.Post
		err   error
	)
	opts := &reddit.ListOptions{Limit: limit}
	switch sort {
	case domain.SortNew:
		posts, _, err = ac.client.Subreddit.NewPosts(ctx, sub, opts)
	case domain.SortTop:
		posts, _, err = ac.client.Subreddit.TopPosts(ctx, sub, &reddit.ListPostOptions{ListOptions: *opts, Time: "all"})
	case domain.SortRising:
		posts, _, err = ac.client.Subreddit.RisingPosts(ctx, sub, opts)
	default:
		posts, _, err = ac.client.Subreddit.HotPosts(ctx, sub, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("authenticated api error: %w", err)
	}
	return mapPosts(posts), nil
}

func (ac *APIClient) SearchPosts(ctx context.Context, sub, query string, limit int) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Search is relevance-ordered upstream; listing sorts do not apply here.
	opts := &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{ListOptions: reddit.ListOptions{Limit: limit}},
	}
	posts, _, err := ac.client.Subreddit.SearchPosts(ctx, query, sub, opts)
	if err != nil {
		return nil, fmt.Errorf("authenticated api error: %w", err)
	}
	return mapPosts(posts), nil
}

func mapPosts(posts []*reddit.Post) []domain.Post {
	var result []domain.Post
	for _, p := range posts {
		result = append(result, domain.Post{
			ID:           p.ID,
			Title:        p.Title,
			Subreddit:    p.SubredditNamePrefixed,
			Author:       p.Author,
			Permalink:    p.Permalink,
			URL:          p.URL,
			Score:        p.Score,
			CommentCount: p.NumberOfComments,
			CreatedUTC:   float64(p.Created.Time.Unix()),
			Snippet:      domain.Snippet(p.Body, domain.SnippetLength),
		})
	}
	return result
}
