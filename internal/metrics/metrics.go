package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	NewsFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketsense_news_fetch_total",
		Help: "News provider calls by provider and outcome.",
	}, []string{"provider", "outcome"})

	ScoringModeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketsense_scoring_mode_total",
		Help: "Analyses by the scoring mode they ran in.",
	}, []string{"mode"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "marketsense_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
