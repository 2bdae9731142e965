package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a service's backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes a liveness endpoint backed by a database ping.
type HealthHandler struct {
	service string
	store   Pinger
}

// NewHealthHandler creates a health handler for the named service.
func NewHealthHandler(service string, store Pinger) *HealthHandler {
	return &HealthHandler{service: service, store: store}
}

// RegisterRoutes registers the health endpoint.
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.GetHealth)
}

// GetHealth returns 200 when the backing store responds, 503 otherwise.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"service": h.service,
			"status":  "down",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service": h.service,
		"status":  "up",
	})
}
