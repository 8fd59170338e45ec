package model

import (
	"time"

	"github.com/ayushmp10/MarketSense/pkg/sentiment"
)

const (
	DefaultTitle       = "No title available"
	DefaultDescription = "No description available"
	DefaultSourceName  = "Yahoo Finance"
)

// ArticleRecord is a provider item after normalization. Every field is
// populated; defaults replace anything the provider left out.
type ArticleRecord struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	SourceName  string
	Content     string
}

type Sentiment struct {
	Score float64
	Label sentiment.Label
}

type ScoredArticle struct {
	ArticleRecord
	Sentiment Sentiment
}
