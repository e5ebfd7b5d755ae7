package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitedriving/institute-api/internal/service"
)

// HealthHandler exposes liveness and observability endpoints.
type HealthHandler struct {
	serviceName string
	metrics     *service.MetricsService
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(serviceName string, metrics *service.MetricsService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, metrics: metrics}
}

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.serviceName,
	})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
