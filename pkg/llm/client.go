package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ayushmp10/MarketSense/pkg/sentiment"
)

const scoringPrompt = `You are a financial news sentiment analyst. You will receive a numbered list of news articles about one stock ticker.

Rules:
1. Rate each article's sentiment toward the company from -1.0 (very negative) to 1.0 (very positive)
2. Use 0.0 for neutral or purely factual articles and for empty entries
3. Judge only the text given, do not use outside knowledge
4. Return exactly one score per article, in the same order

Output as JSON only, no other text:
{
  "scores": [0.0]
}`

const maxTextChars = 600

// truncate cuts s to at most max bytes without splitting a character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}

func formatTextsForScoring(texts []string) string {
	var sb strings.Builder
	for i, text := range texts {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", i, truncate(text, maxTextChars)))
	}
	return sb.String()
}

// parseScores decodes the model's reply and checks it has one score per
// input text.
func parseScores(content string, want int) ([]float64, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	if len(parsed.Scores) != want {
		return nil, fmt.Errorf("expected %d scores, got %d", want, len(parsed.Scores))
	}

	for i, score := range parsed.Scores {
		parsed.Scores[i] = sentiment.Clamp(score)
	}
	return parsed.Scores, nil
}
