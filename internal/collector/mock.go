package collector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mquintal/reddiscover/internal/domain"
)

// MockClient implements domain.Collector with fake data for offline runs.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) ListPosts(ctx context.Context, sub string, sort domain.Sort, limit int) ([]domain.Post, error) {
	var posts []domain.Post
	for i := 0; i < limit; i++ {
		posts = append(posts, mc.post(sub, i, fmt.Sprintf("[%s] Simulated %s discussion #%d", sub, sort, i)))
	}
	return posts, nil
}

func (mc *MockClient) SearchPosts(ctx context.Context, sub, query string, limit int) ([]domain.Post, error) {
	var posts []domain.Post
	for i := 0; i < limit; i++ {
		posts = append(posts, mc.post(sub, i, fmt.Sprintf("[%s] Simulated result #%d for %q", sub, i, query)))
	}
	return posts, nil
}

func (mc *MockClient) post(sub string, i int, title string) domain.Post {
	return domain.Post{
		ID:           fmt.Sprintf("mock_%s_%d", sub, i),
		Title:        title,
		Subreddit:    "r/" + sub,
		Author:       "simulated_user",
		Permalink:    fmt.Sprintf("/r/%s/comments/mock_%d", sub, i),
		URL:          "http://localhost/mock-url",
		Score:        rand.Intn(500),
		CommentCount: rand.Intn(50),
		CreatedUTC:   float64(time.Now().Unix()),
		Snippet:      "Simulated self text for local runs without credentials.",
	}
}
