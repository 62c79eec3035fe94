package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tradechat/internal/infrastructure/http/v1/middleware"
)

// Config is read from the environment once at startup.
type Config struct {
	LogLevel        string
	Development     bool
	Port            string
	CatalogPath     string
	RateLimit       middleware.RateLimitConfig
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

func loadConfig() Config {
	rl := middleware.DefaultRateLimitConfig()
	rl.RPS = getEnvFloat("RATE_LIMIT_RPS", rl.RPS)
	rl.Burst = getEnvInt("RATE_LIMIT_BURST", rl.Burst)

	return Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Development:     getEnv("APP_ENV", "development") == "development",
		Port:            getEnv("APP_PORT", "8080"),
		CatalogPath:     getEnv("CATALOG_PATH", "data/variables_catalog.json"),
		RateLimit:       rl,
		TrustedProxies:  getEnvList("TRUSTED_PROXIES"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
