package source

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ayushmp10/MarketSense/internal/metrics"
	"github.com/ayushmp10/MarketSense/pkg/news"
)

// Adapter wraps one news provider. Provider failures are logged and
// reported as an empty list.
type Adapter struct {
	client news.NewsClient
	limit  int
}

func NewAdapter(client news.NewsClient, limit int) *Adapter {
	return &Adapter{client: client, limit: limit}
}

func (a *Adapter) Name() string {
	return a.client.Name()
}

func (a *Adapter) Fetch(ctx context.Context, ticker string) []news.RawNewsItem {
	ticker = strings.TrimSpace(ticker)
	provider := a.client.Name()

	items, err := a.client.Fetch(ctx, ticker, a.limit)
	if err != nil {
		slog.Error("error fetching news", "source", provider, "ticker", ticker, "error", err)
		metrics.NewsFetchTotal.WithLabelValues(provider, metrics.OutcomeError).Inc()
		return []news.RawNewsItem{}
	}

	if len(items) == 0 {
		slog.Info("no news returned", "source", provider, "ticker", ticker)
		metrics.NewsFetchTotal.WithLabelValues(provider, metrics.OutcomeEmpty).Inc()
		return []news.RawNewsItem{}
	}

	slog.Debug("fetched news", "source", provider, "ticker", ticker, "count", len(items))
	metrics.NewsFetchTotal.WithLabelValues(provider, metrics.OutcomeOK).Inc()
	return items
}
