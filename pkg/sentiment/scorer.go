package sentiment

import (
	"context"
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer rates a single piece of text on [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// BatchScorer rates every text of one analysis in a single call. The
// result must hold one score per input, in input order.
type BatchScorer interface {
	ScoreBatch(ctx context.Context, texts []string) ([]float64, error)
}

// Lexicon scores text with the VADER compound polarity.
type Lexicon struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewLexicon() *Lexicon {
	return &Lexicon{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (l *Lexicon) Score(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	return Clamp(l.analyzer.PolarityScores(text).Compound)
}

func (l *Lexicon) ScoreBatch(ctx context.Context, texts []string) ([]float64, error) {
	scores := make([]float64, len(texts))
	for i, text := range texts {
		scores[i] = l.Score(text)
	}
	return scores, nil
}

// Text builds the scoring input for an article.
func Text(title, description string) string {
	return strings.TrimSpace(title + " " + description)
}

// Clamp bounds a score to [-1, 1]. NaN becomes 0.
func Clamp(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score > 1:
		return 1
	case score < -1:
		return -1
	}
	return score
}
