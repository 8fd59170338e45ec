package analysis

import (
	"context"
	"log/slog"

	"github.com/ayushmp10/MarketSense/internal/metrics"
	"github.com/ayushmp10/MarketSense/internal/model"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
)

// Aggregator scores articles and averages the result. The mode is fixed
// at construction; a failed backend call downgrades only the analysis it
// belongs to.
type Aggregator struct {
	mode    sentiment.Mode
	backend sentiment.BatchScorer
}

func NewAggregator(mode sentiment.Mode, backend sentiment.BatchScorer) *Aggregator {
	if backend == nil {
		mode = sentiment.ModeFallback
	}
	return &Aggregator{mode: mode, backend: backend}
}

func (a *Aggregator) Mode() sentiment.Mode {
	return a.mode
}

func (a *Aggregator) Aggregate(ctx context.Context, articles []model.ArticleRecord) model.AnalysisResult {
	texts := make([]string, len(articles))
	for i, article := range articles {
		texts[i] = scoringText(article)
	}

	mode, scores := a.score(ctx, texts)
	metrics.ScoringModeTotal.WithLabelValues(string(mode)).Inc()

	scored := make([]model.ScoredArticle, len(articles))
	total := 0.0
	for i, article := range articles {
		score := 0.0
		if mode == sentiment.ModeNormal && texts[i] != "" {
			score = sentiment.Clamp(scores[i])
		}
		total += score

		scored[i] = model.ScoredArticle{
			ArticleRecord: article,
			Sentiment: model.Sentiment{
				Score: score,
				Label: sentiment.LabelFor(score),
			},
		}
	}

	overall := 0.0
	if len(scored) > 0 {
		overall = total / float64(len(scored))
	}

	return model.AnalysisResult{
		Articles:         scored,
		OverallSentiment: overall,
		ArticleCount:     len(scored),
	}
}

// score decides the mode for one analysis and returns its scores. In
// fallback mode the scores are nil.
func (a *Aggregator) score(ctx context.Context, texts []string) (sentiment.Mode, []float64) {
	if a.mode != sentiment.ModeNormal || len(texts) == 0 {
		return a.mode, nil
	}

	scores, err := a.backend.ScoreBatch(ctx, texts)
	if err != nil {
		slog.Warn("scoring failed, using fallback", "error", err)
		return sentiment.ModeFallback, nil
	}

	if len(scores) != len(texts) {
		slog.Warn("scoring returned wrong count, using fallback", "want", len(texts), "got", len(scores))
		return sentiment.ModeFallback, nil
	}

	return sentiment.ModeNormal, scores
}

// scoringText is the text an article is rated on. Placeholder defaults
// from normalization are not article content and count as empty.
func scoringText(article model.ArticleRecord) string {
	title := article.Title
	if title == model.DefaultTitle {
		title = ""
	}

	description := article.Description
	if description == model.DefaultDescription {
		description = ""
	}

	return sentiment.Text(title, description)
}
