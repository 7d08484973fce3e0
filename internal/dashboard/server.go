package dashboard

import (
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/mquintal/reddiscover/internal/domain"
)

// Serve renders a one-shot dashboard of this run's results and blocks
// serving it. Nothing is written to disk; the posts live in memory for
// the server's lifetime.
func Serve(addr, runID string, posts []domain.Post) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// 1. Subreddit share
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Subreddit Share", Subtitle: "run " + runID}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)

		subCounts := make(map[string]int)
		for _, p := range posts {
			subCounts[p.Subreddit]++
		}

		var pieItems []opts.PieData
		for k, v := range subCounts {
			pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
		}
		pie.AddSeries("Posts", pieItems)

		// 2. Keyword hits
		bar := charts.NewBar()
		bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Keyword Hits"}))

		kwCounts := make(map[string]int)
		for _, p := range posts {
			for _, k := range p.KeywordsHit {
				kwCounts[k]++
			}
		}

		var barX []string
		var barY []opts.BarData
		for k, v := range kwCounts {
			barX = append(barX, k)
			barY = append(barY, opts.BarData{Value: v})
		}
		bar.SetXAxis(barX).AddSeries("Mentions", barY)

		pie.Render(w)
		bar.Render(w)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	return srv.ListenAndServe()
}
