package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ayushmp10/MarketSense/pkg/llm"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
	"github.com/go-playground/assert/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		"PORT", "NEWS_PROVIDER", "NEWS_LIMIT", "SENTIMENT_SCORER",
		"FRONTEND_URL", "STATIC_DIR", "LOG_LEVEL",
		"FINNHUB_API_KEY", "ALPHA_VANTAGE_API_KEY", "MASSIVE_API_KEY", "NEWS_API_KEY",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderYahoo, cfg.Provider)
	assert.Equal(t, 20, cfg.NewsLimit)
	assert.Equal(t, ScorerLexicon, cfg.Scorer)
	assert.Equal(t, "./web", cfg.StaticDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("NEWS_PROVIDER", "NewsAPI")
	t.Setenv("NEWS_API_KEY", "key-1")
	t.Setenv("NEWS_LIMIT", "5")
	t.Setenv("SENTIMENT_SCORER", "openai")
	t.Setenv("FRONTEND_URL", "https://marketsense.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderNewsAPI, cfg.Provider)
	assert.Equal(t, "key-1", cfg.ProviderKey())
	assert.Equal(t, 5, cfg.NewsLimit)
	assert.Equal(t, ScorerOpenAI, cfg.Scorer)
	assert.Equal(t, "", cfg.ScorerKey())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "https://marketsense.example.com"}, cfg.AllowedOrigins())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown provider", env: map[string]string{"NEWS_PROVIDER": "bloomberg"}},
		{name: "unknown scorer", env: map[string]string{"SENTIMENT_SCORER": "bert"}},
		{name: "missing provider key", env: map[string]string{"NEWS_PROVIDER": "finnhub"}},
		{name: "non numeric limit", env: map[string]string{"NEWS_LIMIT": "lots"}},
		{name: "zero limit", env: map[string]string{"NEWS_LIMIT": "0"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.NotEqual(t, nil, err)
			assert.Equal(t, true, cfg == nil)
		})
	}
}

func TestNewsClient(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{provider: ProviderYahoo, want: "Yahoo"},
		{provider: ProviderRSS, want: "YahooRSS"},
		{provider: ProviderFinnHub, want: "FinnHub"},
		{provider: ProviderNewsAPI, want: "NewsAPI"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &Config{Provider: tt.provider, Keys: map[string]string{}}
			client := cfg.NewsClient()
			assert.Equal(t, tt.want, client.Name())
		})
	}
}

func TestScoringBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("none has no backend", func(t *testing.T) {
		cfg := &Config{Scorer: ScorerNone}
		backend, err := cfg.ScoringBackend(ctx)
		assert.Equal(t, nil, err)
		assert.Equal(t, sentiment.ModeFallback, sentiment.ResolveMode(backend))
	})

	t.Run("lexicon", func(t *testing.T) {
		cfg := &Config{Scorer: ScorerLexicon}
		backend, err := cfg.ScoringBackend(ctx)
		assert.Equal(t, nil, err)
		_, ok := backend.(*sentiment.Lexicon)
		assert.Equal(t, true, ok)
	})

	t.Run("llm without key falls back", func(t *testing.T) {
		cfg := &Config{Scorer: ScorerAnthropic, Keys: map[string]string{}}
		backend, err := cfg.ScoringBackend(ctx)
		assert.NotEqual(t, nil, err)
		assert.Equal(t, sentiment.ModeFallback, sentiment.ResolveMode(backend))
	})

	t.Run("llm with key", func(t *testing.T) {
		cfg := &Config{Scorer: ScorerOpenAI, Keys: map[string]string{"OPENAI_API_KEY": "sk-test"}}
		backend, err := cfg.ScoringBackend(ctx)
		assert.Equal(t, nil, err)
		_, ok := backend.(*llm.OpenAIClient)
		assert.Equal(t, true, ok)
	})
}
