package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool        *pgxpool.Pool
	environment string
}

// NewHealthHandler reports on the journal database when pool is non-nil.
func NewHealthHandler(pool *pgxpool.Pool, environment string) *HealthHandler {
	return &HealthHandler{pool: pool, environment: environment}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": h.environment,
			"database":    "disabled",
		})
		return
	}

	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "unhealthy",
			"environment": h.environment,
			"database":    "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": h.environment,
		"database":    "connected",
	})
}
