package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ayushmp10/MarketSense/internal/analysis"
	"github.com/ayushmp10/MarketSense/internal/config"
	"github.com/ayushmp10/MarketSense/internal/handler"
	"github.com/ayushmp10/MarketSense/internal/middleware"
	"github.com/ayushmp10/MarketSense/internal/normalizer"
	"github.com/ayushmp10/MarketSense/internal/source"
	"github.com/ayushmp10/MarketSense/pkg/sentiment"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := cfg.ScoringBackend(ctx)
	if err != nil {
		slog.Warn("sentiment scorer unavailable, running in fallback mode", "scorer", cfg.Scorer, "error", err)
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}
	mode := sentiment.ResolveMode(backend)

	adapter := source.NewAdapter(cfg.NewsClient(), cfg.NewsLimit)
	service := analysis.NewService(adapter, normalizer.New(), analysis.NewAggregator(mode, backend))
	sentimentHandler := handler.NewSentimentHandler(service, handler.HealthInfo{
		Provider: adapter.Name(),
		Scorer:   cfg.Scorer,
		Mode:     string(mode),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), gin.Recovery())

	allowedOrigins := cfg.AllowedOrigins()
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))

	r.GET("/api/sentiment/:ticker", sentimentHandler.GetSentiment)
	r.GET("/health", sentimentHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
		r.Static("/static", cfg.StaticDir)
	} else {
		slog.Info("static directory not found, front-end disabled", "dir", cfg.StaticDir)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "provider", adapter.Name(), "scorer", cfg.Scorer, "mode", mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
}
