package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/travelmap-backend-go/internal/models"
	"github.com/jengzang/travelmap-backend-go/internal/service"
	"github.com/jengzang/travelmap-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetYearly handles GET /api/v1/stats/yearly
func (h *StatsHandler) GetYearly(c *gin.Context) {
	response.Success(c, h.statsService.Yearly())
}

// GetTopDestinations handles GET /api/v1/stats/destinations
func (h *StatsHandler) GetTopDestinations(c *gin.Context) {
	var filter models.StatsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	response.Success(c, h.statsService.TopDestinations(filter.Limit))
}
