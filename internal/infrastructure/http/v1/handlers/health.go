package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradechat/internal/domain/catalog"
)

// AppVersion is reported by the info endpoint.
const AppVersion = "0.1.0"

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	catalog *catalog.Catalog
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cat *catalog.Catalog) *HealthHandler {
	return &HealthHandler{catalog: cat}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the catalog loaded?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.catalog == nil || h.catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"catalog": "not loaded",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"variables": h.catalog.Len(),
		"checks": map[string]string{
			"catalog": "loaded",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	size := 0
	if h.catalog != nil {
		size = h.catalog.Len()
	}

	c.JSON(http.StatusOK, gin.H{
		"app":     "tradechat",
		"version": AppVersion,
		"catalog": map[string]any{
			"variables": size,
		},
	})
}
