package handler

import (
	"context"
	"net/http"

	"survey-enrichment/internal/models"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler handles geocoding preview requests
type GeocodeHandler struct {
	geocoder Geocoder
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Lookup(context.Context, string) *models.GeocodeResult
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(geocoder Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Geocode handles GET /geocode requests
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'address'"})
		return
	}

	result := h.geocoder.Lookup(c.Request.Context(), address)
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no geocoding result for address"})
		return
	}

	c.JSON(http.StatusOK, result)
}
