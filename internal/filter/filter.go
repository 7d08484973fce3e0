package filter

import (
	"strings"

	"github.com/mquintal/reddiscover/internal/domain"
)

// ByKeywords returns the posts whose lower-cased title or body snippet
// contains at least one keyword as a substring, preserving input order.
// Keywords are expected lower-cased already (the argument parser does
// this). An empty keyword set returns the input unchanged.
//
// Matched posts get their KeywordsHit field filled so downstream output
// can show why a post survived.
func ByKeywords(posts []domain.Post, keywords []string) []domain.Post {
	if len(keywords) == 0 {
		return posts
	}

	var matched []domain.Post
	for _, p := range posts {
		title := strings.ToLower(p.Title)
		body := strings.ToLower(p.Snippet)

		var hits []string
		for _, kw := range keywords {
			if strings.Contains(title, kw) || strings.Contains(body, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			p.KeywordsHit = hits
			matched = append(matched, p)
		}
	}
	return matched
}
