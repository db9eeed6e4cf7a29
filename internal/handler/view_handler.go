package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/travelmap-backend-go/internal/models"
	"github.com/jengzang/travelmap-backend-go/internal/service"
	"github.com/jengzang/travelmap-backend-go/pkg/response"
)

// ViewHandler handles HTTP requests for the interactive map view
type ViewHandler struct {
	service *service.ViewService
}

// NewViewHandler creates a new view handler
func NewViewHandler(service *service.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// GetView handles GET /api/v1/view
func (h *ViewHandler) GetView(c *gin.Context) {
	response.Success(c, h.service.Snapshot())
}

// SetFilters handles POST /api/v1/view/filters
func (h *ViewHandler) SetFilters(c *gin.Context) {
	var filter models.ViewFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter payload", err)
		return
	}

	response.Success(c, h.service.SetFilters(filter))
}

// SelectTrip handles POST /api/v1/view/select
func (h *ViewHandler) SelectTrip(c *gin.Context) {
	var sel models.TripSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid selection payload", err)
		return
	}

	response.Success(c, h.service.SelectTrip(sel.TripGroupKey))
}

// SetColorMode handles POST /api/v1/view/colormode
func (h *ViewHandler) SetColorMode(c *gin.Context) {
	var req models.ColorModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid color mode payload", err)
		return
	}

	snap, err := h.service.SetColorMode(req.Mode)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unknown color mode", err)
		return
	}

	response.Success(c, snap)
}

// Reset handles POST /api/v1/view/reset
func (h *ViewHandler) Reset(c *gin.Context) {
	response.Success(c, h.service.Reset())
}

// SetCardExpanded handles POST /api/v1/view/cards/:key/expanded
func (h *ViewHandler) SetCardExpanded(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.Error(c, http.StatusBadRequest, "Missing trip group key", nil)
		return
	}

	var req models.CardExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid expand payload", err)
		return
	}

	response.Success(c, h.service.SetCardExpanded(key, req.Expanded))
}
