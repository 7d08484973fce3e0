package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mquintal/reddiscover/internal/domain"
)

const (
	rule      = "========================================================================"
	separator = "------------------------------------------------------------------------"
	wrapWidth = 64
)

// RenderText writes each post as a fixed multi-line block, in input order.
func RenderText(w io.Writer, posts []domain.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "\n  No discussions found matching your criteria.")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, " %s\n", center("DISCOVERED DISCUSSIONS", 70))
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "  %d result(s) found\n\n", len(posts))

	for i, p := range posts {
		created := time.Unix(int64(p.CreatedUTC), 0).UTC()

		fmt.Fprintf(w, "  [%d] %s\n", i+1, p.Title)
		fmt.Fprintf(w, "      Sub    : %s\n", p.Subreddit)
		fmt.Fprintf(w, "      Author : u/%s\n", p.Author)
		fmt.Fprintf(w, "      Score  : %d  |  Comments: %d\n", p.Score, p.CommentCount)
		fmt.Fprintf(w, "      Date   : %s UTC\n", created.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "      Link   : https://reddit.com%s\n", p.Permalink)

		if p.Snippet != "" {
			fmt.Fprintln(w, wrap(p.Snippet, wrapWidth, "      > ", "        "))
		}

		fmt.Fprintf(w, "      %s\n", separator)
	}
	fmt.Fprintln(w)
}

// RenderJSON writes one JSON object per post, one per line, so results can
// be piped into jq and friends.
func RenderJSON(w io.Writer, posts []domain.Post) error {
	enc := json.NewEncoder(w)
	for _, p := range posts {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding post %s: %w", p.ID, err)
		}
	}
	return nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// wrap greedily fills lines up to width characters of content, with a
// distinct indent for the first line.
func wrap(text string, width int, firstIndent, restIndent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return firstIndent
	}

	var b strings.Builder
	b.WriteString(firstIndent)
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteString("\n")
			b.WriteString(restIndent)
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		lineLen += 1 + len(word)
	}
	return b.String()
}
