package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayushmp10/MarketSense/internal/model"
	"github.com/ayushmp10/MarketSense/pkg/news"
)

type State int

const (
	StateNormal State = iota
	StateNoData
	StateFailed
)

// Outcome is the result of one analysis. Result is set unless State is
// StateFailed, in which case Err is.
type Outcome struct {
	State  State
	Result *model.AnalysisResult
	Err    error
}

type NewsSource interface {
	Fetch(ctx context.Context, ticker string) []news.RawNewsItem
}

type ArticleNormalizer interface {
	NormalizeAll(items []news.RawNewsItem) []model.ArticleRecord
}

type Service struct {
	source     NewsSource
	normalizer ArticleNormalizer
	aggregator *Aggregator
}

func NewService(source NewsSource, normalizer ArticleNormalizer, aggregator *Aggregator) *Service {
	return &Service{
		source:     source,
		normalizer: normalizer,
		aggregator: aggregator,
	}
}

func (s *Service) Analyze(ctx context.Context, ticker string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis failed", "ticker", ticker, "panic", r)
			out = Outcome{State: StateFailed, Err: fmt.Errorf("%v", r)}
		}
	}()

	ticker = strings.TrimSpace(ticker)

	items := s.source.Fetch(ctx, ticker)
	if len(items) == 0 {
		result := model.NoDataResult(ticker)
		return Outcome{State: StateNoData, Result: &result}
	}

	articles := s.normalizer.NormalizeAll(items)
	result := s.aggregator.Aggregate(ctx, articles)
	return Outcome{State: StateNormal, Result: &result}
}
