package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/types"
)

// Health godoc
// @Summary Service health
// @Description Always 200 while the process serves requests; a Redis outage only degrades rate limiting to memory.
// @Tags ops
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
		Redis:     h.redisStatus(c.Request.Context()),
		Metrics:   h.metrics.GetStats(),
	})
}

func (h *Handler) redisStatus(ctx context.Context) string {
	if h.redis == nil || !h.redis.IsEnabled() {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := h.redis.HealthCheck(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

// Metrics godoc
// @Summary Request and prediction statistics
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /metrics [get]
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetStats())
}
