package model

import "fmt"

type AnalysisResult struct {
	Articles         []ScoredArticle
	OverallSentiment float64
	ArticleCount     int
	Message          string
}

// NoDataResult is returned when the provider yields nothing for a ticker.
func NoDataResult(ticker string) AnalysisResult {
	return AnalysisResult{
		Articles: []ScoredArticle{},
		Message:  fmt.Sprintf("No news articles found for ticker %s", ticker),
	}
}
