package handlers

import (
	"net/http"

	"doctorsportal/services/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServices handles GET /services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		internalError(c, "failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailability handles GET /available?date=D.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	services, err := h.Catalog.Availability(c.Request.Context(), date)
	if err != nil {
		internalError(c, "failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, services)
}
