package config

import (
	"context"
	"fmt"

	"github.com/ayushmp10/MarketSense/pkg/llm"
	"github.com/ayushmp10/MarketSense/pkg/news"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
)

func (cfg *Config) NewsClient() news.NewsClient {
	switch cfg.Provider {
	case ProviderRSS:
		return news.NewRSSClient()
	case ProviderFinnHub:
		return news.NewFinnHubClient(cfg.ProviderKey())
	case ProviderAlphaVantage:
		return news.NewAlphaVantageClient(cfg.ProviderKey())
	case ProviderMassive:
		return news.NewMassiveClient(cfg.ProviderKey())
	case ProviderNewsAPI:
		return news.NewNewsAPIClient(cfg.ProviderKey())
	default:
		return news.NewYahooClient()
	}
}

// ScoringBackend builds the configured scorer. It returns nil with no
// error for "none", and an error when an LLM scorer has no key; callers
// run in fallback mode in both cases.
func (cfg *Config) ScoringBackend(ctx context.Context) (sentiment.BatchScorer, error) {
	if cfg.Scorer == ScorerNone {
		return nil, nil
	}
	if cfg.Scorer == ScorerLexicon {
		return sentiment.NewLexicon(), nil
	}

	key := cfg.ScorerKey()
	if key == "" {
		return nil, fmt.Errorf("%s is not set", scorerKeyEnv[cfg.Scorer])
	}

	switch cfg.Scorer {
	case ScorerOpenAI:
		return llm.NewOpenAIClient(key), nil
	case ScorerAnthropic:
		return llm.NewAnthropicClient(key), nil
	case ScorerGemini:
		client, err := llm.NewGeminiClient(ctx, key)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, fmt.Errorf("unknown scorer %q", cfg.Scorer)
}
