package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/travelmap-backend-go/internal/service"
	"github.com/jengzang/travelmap-backend-go/pkg/response"
)

// DocumentsHandler handles document reload requests
type DocumentsHandler struct {
	service *service.ViewService
}

// NewDocumentsHandler creates a new documents handler
func NewDocumentsHandler(service *service.ViewService) *DocumentsHandler {
	return &DocumentsHandler{service: service}
}

// Reload handles POST /api/v1/documents/reload. On failure the previously
// loaded documents stay live.
func (h *DocumentsHandler) Reload(c *gin.Context) {
	snap, err := h.service.Reload()
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Failed to reload documents", err)
		return
	}

	response.Success(c, snap)
}
