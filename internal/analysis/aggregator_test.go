package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ayushmp10/MarketSense/internal/model"
	"github.com/ayushmp10/MarketSense/internal/normalizer"
	"github.com/ayushmp10/MarketSense/pkg/news"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
	"github.com/go-playground/assert/v2"
)

// fakeScorer returns scores keyed by text.
type fakeScorer struct {
	scores map[string]float64
	err    error
	short  bool
	calls  int
}

func (f *fakeScorer) ScoreBatch(ctx context.Context, texts []string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float64, len(texts))
	for i, text := range texts {
		out[i] = f.scores[text]
	}
	if f.short {
		out = out[:len(out)-1]
	}
	return out, nil
}

func articles(titles ...string) []model.ArticleRecord {
	records := make([]model.ArticleRecord, len(titles))
	for i, title := range titles {
		records[i] = model.ArticleRecord{Title: title}
	}
	return records
}

func TestAggregateEmpty(t *testing.T) {
	agg := NewAggregator(sentiment.ModeNormal, &fakeScorer{})

	result := agg.Aggregate(context.Background(), nil)

	assert.Equal(t, 0, result.ArticleCount)
	assert.Equal(t, 0.0, result.OverallSentiment)
	assert.NotEqual(t, nil, result.Articles)
	assert.Equal(t, 0, len(result.Articles))
}

func TestAggregateMean(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"a": 0.5, "b": -0.5, "c": 0.2}}
	agg := NewAggregator(sentiment.ModeNormal, scorer)

	result := agg.Aggregate(context.Background(), articles("a", "b", "c"))

	assert.Equal(t, 3, result.ArticleCount)
	assert.Equal(t, true, math.Abs(result.OverallSentiment-0.0666666) < 1e-6)
	assert.Equal(t, 1, scorer.calls)
}

func TestAggregatePreservesOrderAndLabels(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"up": 0.6, "flat": 0.1, "down": -0.7}}
	agg := NewAggregator(sentiment.ModeNormal, scorer)
	input := articles("up", "flat", "down")

	result := agg.Aggregate(context.Background(), input)

	assert.Equal(t, 3, len(result.Articles))
	for i := range input {
		assert.Equal(t, input[i], result.Articles[i].ArticleRecord)
	}
	assert.Equal(t, sentiment.Positive, result.Articles[0].Sentiment.Label)
	assert.Equal(t, sentiment.Neutral, result.Articles[1].Sentiment.Label)
	assert.Equal(t, sentiment.Negative, result.Articles[2].Sentiment.Label)
}

func TestAggregateEmptyTextScoresZero(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"": 0.9, "good": 0.4}}
	agg := NewAggregator(sentiment.ModeNormal, scorer)

	result := agg.Aggregate(context.Background(), articles("  ", "good"))

	assert.Equal(t, 0.0, result.Articles[0].Sentiment.Score)
	assert.Equal(t, 0.4, result.Articles[1].Sentiment.Score)
}

func TestAggregateFallback(t *testing.T) {
	tests := []struct {
		name   string
		mode   sentiment.Mode
		scorer sentiment.BatchScorer
	}{
		{name: "configured fallback", mode: sentiment.ModeFallback, scorer: &fakeScorer{scores: map[string]float64{"a": 0.9}}},
		{name: "no backend", mode: sentiment.ModeNormal, scorer: nil},
		{name: "backend error", mode: sentiment.ModeNormal, scorer: &fakeScorer{err: errors.New("rate limited")}},
		{name: "count mismatch", mode: sentiment.ModeNormal, scorer: &fakeScorer{scores: map[string]float64{"a": 0.9, "b": 0.9}, short: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(tt.mode, tt.scorer)

			result := agg.Aggregate(context.Background(), articles("a", "b"))

			assert.Equal(t, 2, result.ArticleCount)
			assert.Equal(t, 0.0, result.OverallSentiment)
			for _, a := range result.Articles {
				assert.Equal(t, 0.0, a.Sentiment.Score)
				assert.Equal(t, sentiment.Neutral, a.Sentiment.Label)
			}
		})
	}
}

func TestAggregateWithLexicon(t *testing.T) {
	agg := NewAggregator(sentiment.ModeNormal, sentiment.NewLexicon())
	input := []model.ArticleRecord{
		{Title: "Shares soar after excellent results", Description: "Investors love the strong growth"},
		{Title: "Company hit by terrible scandal", Description: "Losses are awful"},
	}

	result := agg.Aggregate(context.Background(), input)

	assert.Equal(t, sentiment.Positive, result.Articles[0].Sentiment.Label)
	assert.Equal(t, sentiment.Negative, result.Articles[1].Sentiment.Label)
	for _, a := range result.Articles {
		assert.Equal(t, true, a.Sentiment.Score >= -1 && a.Sentiment.Score <= 1)
	}
}

func TestAggregateIgnoresPlaceholderText(t *testing.T) {
	lex := sentiment.NewLexicon()
	agg := NewAggregator(sentiment.ModeNormal, lex)
	n := normalizer.New()

	var titled news.RawNewsItem
	titled.Title = news.Some("Apple posts great earnings")

	input := []model.ArticleRecord{
		n.Normalize(news.RawNewsItem{}),
		n.Normalize(titled),
	}

	result := agg.Aggregate(context.Background(), input)

	assert.Equal(t, model.DefaultTitle, result.Articles[0].Title)
	assert.Equal(t, 0.0, result.Articles[0].Sentiment.Score)
	assert.Equal(t, sentiment.Neutral, result.Articles[0].Sentiment.Label)

	assert.Equal(t, model.DefaultDescription, result.Articles[1].Description)
	assert.Equal(t, lex.Score("Apple posts great earnings"), result.Articles[1].Sentiment.Score)
	assert.Equal(t, sentiment.Positive, result.Articles[1].Sentiment.Label)

	assert.Equal(t, lex.Score("Apple posts great earnings")/2, result.OverallSentiment)
}

func TestScoringText(t *testing.T) {
	tests := []struct {
		name    string
		article model.ArticleRecord
		want    string
	}{
		{name: "both defaults", article: model.ArticleRecord{Title: model.DefaultTitle, Description: model.DefaultDescription}, want: ""},
		{name: "default description", article: model.ArticleRecord{Title: "Apple rallies", Description: model.DefaultDescription}, want: "Apple rallies"},
		{name: "default title", article: model.ArticleRecord{Title: model.DefaultTitle, Description: "Shares rose"}, want: "Shares rose"},
		{name: "real text", article: model.ArticleRecord{Title: "Apple rallies", Description: "Shares rose"}, want: "Apple rallies Shares rose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoringText(tt.article))
		})
	}
}
