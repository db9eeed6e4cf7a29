package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/travelmap-backend-go/internal/config"
	"github.com/jengzang/travelmap-backend-go/internal/handler"
	"github.com/jengzang/travelmap-backend-go/internal/metrics"
	"github.com/jengzang/travelmap-backend-go/internal/middleware"
	"github.com/jengzang/travelmap-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface: view pipeline endpoints, stats,
// document reload and metrics.
func SetupRouter(cfg *config.Config, views *service.ViewService, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the static map frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Travel Map API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	viewHandler := handler.NewViewHandler(views)
	statsHandler := handler.NewStatsHandler(service.NewStatsService(views))
	docsHandler := handler.NewDocumentsHandler(views)

	api := r.Group("/api/v1")
	if cfg.RateLimit > 0 {
		api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	}
	{
		view := api.Group("/view")
		{
			view.GET("", viewHandler.GetView)
			view.POST("/filters", viewHandler.SetFilters)
			view.POST("/select", viewHandler.SelectTrip)
			view.POST("/colormode", viewHandler.SetColorMode)
			view.POST("/reset", viewHandler.Reset)
			view.POST("/cards/:key/expanded", viewHandler.SetCardExpanded)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/yearly", statsHandler.GetYearly)
			stats.GET("/destinations", statsHandler.GetTopDestinations)
		}

		documents := api.Group("/documents")
		documents.Use(middleware.RequireToken(cfg.JWTSecret))
		{
			documents.POST("/reload", docsHandler.Reload)
		}
	}

	return r
}
