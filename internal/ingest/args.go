package ingest

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mquintal/reddiscover/internal/domain"
)

const (
	defaultSubreddits = "python"
	defaultLimit      = 10
	defaultSort       = "hot"
	defaultAddr       = ":8080"
)

// Regex for valid subreddit names
var subNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// Options is the fully parsed command line: the request itself plus the
// output switches that do not affect what is fetched.
type Options struct {
	Spec      domain.RequestSpec
	JSON      bool // NDJSON to stdout instead of text blocks
	Dashboard bool // serve a results dashboard after printing
	Addr      string
}

// ParseArgs turns raw command-line tokens into validated Options. Any
// validation failure is returned as an error; nothing is fetched before
// the whole line parses clean.
func ParseArgs(args []string, usageOut io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("reddiscover", flag.ContinueOnError)
	fs.SetOutput(usageOut)

	var (
		subreddits string
		limit      int
		keywords   string
		sortName   string
		query      string
		jsonOut    bool
		dash       bool
		addr       string
	)

	fs.StringVar(&subreddits, "subreddits", defaultSubreddits, "Comma-separated list of subreddits to explore")
	fs.StringVar(&subreddits, "s", defaultSubreddits, "Subreddits (shorthand)")
	// Kept for compatibility with the older single-subreddit form.
	fs.StringVar(&subreddits, "subreddit", defaultSubreddits, "Single subreddit (alias of --subreddits)")
	fs.IntVar(&limit, "limit", defaultLimit, "Number of posts to fetch per subreddit")
	fs.IntVar(&limit, "l", defaultLimit, "Limit (shorthand)")
	fs.StringVar(&keywords, "keywords", "", `Comma-separated keywords to filter on (e.g. "async,typing,pep")`)
	fs.StringVar(&keywords, "k", "", "Keywords (shorthand)")
	fs.StringVar(&sortName, "sort", defaultSort, "Sort order for browsing: hot, new, top, rising")
	fs.StringVar(&query, "search", "", `Search query to discover relevant discussions (e.g. "async python")`)
	fs.BoolVar(&jsonOut, "json", false, "Output results as NDJSON")
	fs.BoolVar(&dash, "dashboard", false, "Serve a results dashboard after printing")
	fs.StringVar(&addr, "addr", defaultAddr, "Dashboard listen address")

	fs.Usage = func() {
		fmt.Fprintln(usageOut, `reddiscover - discover relevant Reddit discussions (read-only)

Usage:
  reddiscover [options]

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be a positive integer, got %d", limit)
	}

	sort, err := domain.ParseSort(sortName)
	if err != nil {
		return nil, err
	}

	subs, err := splitSubreddits(subreddits)
	if err != nil {
		return nil, err
	}

	return &Options{
		Spec: domain.RequestSpec{
			Subreddits: subs,
			Limit:      limit,
			Query:      strings.TrimSpace(query),
			Keywords:   splitKeywords(keywords),
			Sort:       sort,
		},
		JSON:      jsonOut,
		Dashboard: dash,
		Addr:      addr,
	}, nil
}

// splitSubreddits normalizes a comma-separated list into an ordered set:
// trimmed, "r/" prefix dropped, validated, deduplicated case-insensitively
// with first spelling kept.
func splitSubreddits(s string) ([]string, error) {
	seen := make(map[string]bool)
	var subs []string
	for _, raw := range strings.Split(s, ",") {
		name := strings.TrimSpace(raw)
		name = strings.TrimPrefix(name, "r/")
		if name == "" {
			continue
		}
		if !subNameRegex.MatchString(name) {
			return nil, fmt.Errorf("invalid subreddit name %q", name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		subs = append(subs, name)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("no subreddits given")
	}
	return subs, nil
}

func splitKeywords(s string) []string {
	var kws []string
	for _, raw := range strings.Split(s, ",") {
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	return kws
}
