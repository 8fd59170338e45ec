package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ayushmp10/MarketSense/internal/analysis"
	"github.com/gin-gonic/gin"
)

type Analyzer interface {
	Analyze(ctx context.Context, ticker string) analysis.Outcome
}

// HealthInfo describes the running configuration for /health.
type HealthInfo struct {
	Provider string
	Scorer   string
	Mode     string
}

type SentimentHandler struct {
	analyzer Analyzer
	health   HealthInfo
}

func NewSentimentHandler(analyzer Analyzer, health HealthInfo) *SentimentHandler {
	return &SentimentHandler{analyzer: analyzer, health: health}
}

func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	ticker := c.Param("ticker")

	out := h.analyzer.Analyze(c.Request.Context(), ticker)
	if out.State == analysis.StateFailed {
		slog.Error("error analyzing sentiment", "ticker", ticker, "error", out.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": out.Err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewAnalysisResponse(*out.Result))
}

func (h *SentimentHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: h.health.Provider,
		Scorer:   h.health.Scorer,
		Mode:     h.health.Mode,
	})
}
