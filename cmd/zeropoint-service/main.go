package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ceccec/zeropoint/internal/config"
	"github.com/ceccec/zeropoint/internal/handler"
	"github.com/ceccec/zeropoint/pkg/engine"
	"github.com/ceccec/zeropoint/pkg/generator"
	pkglog "github.com/ceccec/zeropoint/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "zeropoint-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting zeropoint-service")

	// Namespace was validated by config.Load.
	ns, _ := cfg.Generator.Namespace()
	eng := engine.New(
		generator.WithLayout(cfg.Generator.Layout()),
		generator.WithNamespace(ns),
	)
	logger.Info().
		Str(pkglog.FieldLayout, eng.PatternLayout().String()).
		Str("default_namespace", ns.String()).
		Int("max_batch", cfg.Generator.MaxBatch).
		Msg("identifier engine initialized")

	httpHandler := handler.NewHandler(eng, cfg.Generator.MaxBatch)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger, func() string { return eng.GenerateRandom().String() }))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down zeropoint-service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("zeropoint-service stopped")
}
