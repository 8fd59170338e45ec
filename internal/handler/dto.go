package handler

import (
	"time"

	"github.com/ayushmp10/MarketSense/internal/model"
)

type ArticleResponse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	URL         string            `json:"url"`
	URLToImage  string            `json:"urlToImage"`
	PublishedAt string            `json:"publishedAt"`
	Source      SourceResponse    `json:"source"`
	Content     string            `json:"content"`
	Sentiment   SentimentResponse `json:"sentiment"`
}

type SourceResponse struct {
	Name string `json:"name"`
}

type SentimentResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type AnalysisResponse struct {
	Articles         []ArticleResponse `json:"articles"`
	OverallSentiment float64           `json:"overall_sentiment"`
	ArticleCount     int               `json:"article_count"`
	Message          string            `json:"message,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Scorer   string `json:"scorer"`
	Mode     string `json:"mode"`
}

// NewAnalysisResponse renders a result in the public JSON shape. The CLI
// prints the same structure.
func NewAnalysisResponse(result model.AnalysisResult) AnalysisResponse {
	articles := make([]ArticleResponse, 0, len(result.Articles))
	for _, a := range result.Articles {
		articles = append(articles, ArticleResponse{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.ImageURL,
			PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
			Source:      SourceResponse{Name: a.SourceName},
			Content:     a.Content,
			Sentiment: SentimentResponse{
				Score: a.Sentiment.Score,
				Label: string(a.Sentiment.Label),
			},
		})
	}

	return AnalysisResponse{
		Articles:         articles,
		OverallSentiment: result.OverallSentiment,
		ArticleCount:     result.ArticleCount,
		Message:          result.Message,
	}
}
