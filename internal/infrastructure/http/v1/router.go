// Package v1 provides HTTP API version 1.
package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"tradechat/internal/domain/catalog"
	"tradechat/internal/domain/chat"
	"tradechat/internal/infrastructure/http/v1/handlers"
	"tradechat/internal/infrastructure/http/v1/middleware"
	"tradechat/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Catalog is the loaded, read-only variable catalog
	Catalog *catalog.Catalog

	// Logger for request logging
	Logger *logger.Logger

	// RateLimit throttles chat and API calls per client IP
	RateLimit middleware.RateLimitConfig

	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is honored.
	// Empty means the client IP is always the TCP peer address.
	TrustedProxies []string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("router: catalog is required")
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("router: trusted proxies: %w", err)
	}

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (never throttled)
	healthHandler := handlers.NewHealthHandler(cfg.Catalog)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()
	limiter := middleware.NewClientLimiter(cfg.RateLimit)

	// Chat widget
	router.GET("/", handlers.Page)
	chatHandler := handlers.NewChatHandler(baseHandler, chat.NewResponder(cfg.Catalog))
	router.POST("/chat", middleware.RateLimit(limiter), chatHandler.Send)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter))
	{
		variables := handlers.NewVariablesHandler(baseHandler, cfg.Catalog)
		v1.GET("/variables", variables.List)
		v1.GET("/variables/search", variables.Search)
	}

	return router, nil
}
