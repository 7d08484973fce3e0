package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mquintal/reddiscover/internal/collector"
	"github.com/mquintal/reddiscover/internal/config"
	"github.com/mquintal/reddiscover/internal/dashboard"
	"github.com/mquintal/reddiscover/internal/display"
	"github.com/mquintal/reddiscover/internal/fetch"
	"github.com/mquintal/reddiscover/internal/filter"
	"github.com/mquintal/reddiscover/internal/ingest"
)

func main() {
	// Diagnostics go to stderr, results to stdout.
	godotenv.Load()
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	opts, err := ingest.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("invalid arguments", "err", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}

	col, err := collector.New(cfg)
	if err != nil {
		slog.Error("failed to initialize reddit session", "err", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	slog.Info("reddit session ready (read-only)", "run_id", runID, "subreddits", len(opts.Spec.Subreddits))

	results := fetch.New(col).Run(context.Background(), opts.Spec)
	posts := fetch.Flatten(results)
	matched := filter.ByKeywords(posts, opts.Spec.Keywords)
	slog.Info("keyword filter applied", "matched", len(matched), "fetched", len(posts))

	if opts.JSON {
		if err := display.RenderJSON(os.Stdout, matched); err != nil {
			slog.Error("output failed", "err", err)
			os.Exit(1)
		}
	} else {
		display.RenderText(os.Stdout, matched)
	}

	if opts.Dashboard {
		slog.Info("serving results dashboard", "addr", opts.Addr)
		if err := dashboard.Serve(opts.Addr, runID, matched); err != nil {
			slog.Error("dashboard failed", "err", err)
			os.Exit(1)
		}
	}
}
