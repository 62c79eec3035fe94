// Package main is the entry point for the trade variables chat server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"tradechat/internal/domain/catalog"
	v1 "tradechat/internal/infrastructure/http/v1"
	"tradechat/pkg/logger"
)

func main() {
	cfg := loadConfig()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting tradechat server")

	// --- Catalog (fatal on any load error, never serve a partial catalog) ---
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalw("failed to load catalog", "path", cfg.CatalogPath, "error", err)
	}
	log.Infow("catalog loaded", "path", cfg.CatalogPath, "variables", cat.Len())

	// --- Router ---
	router, err := v1.NewRouter(v1.RouterConfig{
		Catalog:        cat,
		Logger:         log,
		RateLimit:      cfg.RateLimit,
		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      gzhttp.GzipHandler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting",
			"port", cfg.Port,
			"rate_limit_rps", cfg.RateLimit.RPS,
			"rate_limit_burst", cfg.RateLimit.Burst,
			"trusted_proxies", cfg.TrustedProxies,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
