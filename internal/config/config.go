package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	ProviderYahoo        = "yahoo"
	ProviderRSS          = "rss"
	ProviderFinnHub      = "finnhub"
	ProviderAlphaVantage = "alphavantage"
	ProviderMassive      = "massive"
	ProviderNewsAPI      = "newsapi"

	ScorerLexicon   = "lexicon"
	ScorerOpenAI    = "openai"
	ScorerAnthropic = "anthropic"
	ScorerGemini    = "gemini"
	ScorerNone      = "none"
)

// providerKeyEnv names the key each provider needs. Providers not listed
// work without one.
var providerKeyEnv = map[string]string{
	ProviderFinnHub:      "FINNHUB_API_KEY",
	ProviderAlphaVantage: "ALPHA_VANTAGE_API_KEY",
	ProviderMassive:      "MASSIVE_API_KEY",
	ProviderNewsAPI:      "NEWS_API_KEY",
}

var scorerKeyEnv = map[string]string{
	ScorerOpenAI:    "OPENAI_API_KEY",
	ScorerAnthropic: "ANTHROPIC_API_KEY",
	ScorerGemini:    "GEMINI_API_KEY",
}

type Config struct {
	Port        string
	Provider    string
	NewsLimit   int
	Scorer      string
	FrontendURL string
	StaticDir   string
	LogLevel    slog.Level

	// Keys holds every API key found in the environment, by env name.
	Keys map[string]string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		Provider:    strings.ToLower(getenv("NEWS_PROVIDER", ProviderYahoo)),
		Scorer:      strings.ToLower(getenv("SENTIMENT_SCORER", ScorerLexicon)),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		StaticDir:   getenv("STATIC_DIR", "./web"),
		Keys:        map[string]string{},
	}

	limit, err := strconv.Atoi(getenv("NEWS_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_LIMIT: %w", err)
	}
	cfg.NewsLimit = limit

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	for _, env := range providerKeyEnv {
		cfg.Keys[env] = os.Getenv(env)
	}
	for _, env := range scorerKeyEnv {
		cfg.Keys[env] = os.Getenv(env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Provider {
	case ProviderYahoo, ProviderRSS, ProviderFinnHub, ProviderAlphaVantage, ProviderMassive, ProviderNewsAPI:
	default:
		return fmt.Errorf("unknown NEWS_PROVIDER: %q", cfg.Provider)
	}

	switch cfg.Scorer {
	case ScorerLexicon, ScorerOpenAI, ScorerAnthropic, ScorerGemini, ScorerNone:
	default:
		return fmt.Errorf("unknown SENTIMENT_SCORER: %q", cfg.Scorer)
	}

	if env, ok := providerKeyEnv[cfg.Provider]; ok && cfg.Keys[env] == "" {
		return fmt.Errorf("%s is required for provider %s", env, cfg.Provider)
	}

	if cfg.NewsLimit <= 0 {
		return errors.New("NEWS_LIMIT must be positive")
	}
	return nil
}

// ProviderKey returns the API key for the configured news provider.
func (cfg *Config) ProviderKey() string {
	return cfg.Keys[providerKeyEnv[cfg.Provider]]
}

// ScorerKey returns the API key for the configured LLM scorer, or "" for
// scorers that need none.
func (cfg *Config) ScorerKey() string {
	env, ok := scorerKeyEnv[cfg.Scorer]
	if !ok {
		return ""
	}
	return cfg.Keys[env]
}

// AllowedOrigins lists the CORS origins for the API.
func (cfg *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return origins
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
