package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/billplz/internal/middleware"
	"github.com/anyulbade/billplz/internal/service"
)

type RouterConfig struct {
	Tools       *service.ToolService
	Journal     *service.JournalService
	Pool        *pgxpool.Pool
	Environment string
	Version     string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := NewHealthHandler(cfg.Pool, cfg.Environment)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", MetricsHandler())

	if cfg.Tools != nil {
		SetupSwagger(router, cfg.Tools, cfg.Version)
	}

	toolHandler := NewToolHandler(cfg.Tools)
	journalHandler := NewJournalHandler(cfg.Journal)

	api := router.Group("/api/v1")
	{
		api.GET("/tools", toolHandler.List)
		api.POST("/tools/:name", toolHandler.Invoke)
		api.GET("/journal", journalHandler.List)
		api.GET("/journal/stats", journalHandler.Stats)
		api.GET("/journal/:id", journalHandler.Get)
	}

	return router
}
