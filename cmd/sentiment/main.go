package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/ayushmp10/MarketSense/internal/analysis"
	"github.com/ayushmp10/MarketSense/internal/config"
	"github.com/ayushmp10/MarketSense/internal/handler"
	"github.com/ayushmp10/MarketSense/internal/normalizer"
	"github.com/ayushmp10/MarketSense/internal/source"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
	"github.com/joho/godotenv"
)

func main() {
	ticker := flag.String("ticker", "", "stock ticker to analyze, e.g. AAPL")
	flag.Parse()

	if *ticker == "" {
		flag.Usage()
		os.Exit(2)
	}

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// stdout carries the result, so logs go to stderr.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()

	backend, err := cfg.ScoringBackend(ctx)
	if err != nil {
		slog.Warn("sentiment scorer unavailable, running in fallback mode", "scorer", cfg.Scorer, "error", err)
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}

	adapter := source.NewAdapter(cfg.NewsClient(), cfg.NewsLimit)
	service := analysis.NewService(adapter, normalizer.New(), analysis.NewAggregator(sentiment.ResolveMode(backend), backend))

	out := service.Analyze(ctx, *ticker)
	if out.State == analysis.StateFailed {
		slog.Error("error analyzing sentiment", "ticker", *ticker, "error", out.Err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(handler.NewAnalysisResponse(*out.Result)); err != nil {
		log.Fatalf("error writing result: %v", err)
	}

	slog.Info("analysis complete", "ticker", *ticker, "articles", out.Result.ArticleCount, "overall", out.Result.OverallSentiment)
}
