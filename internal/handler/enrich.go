package handler

import (
	"context"
	"net/http"

	"survey-enrichment/internal/models"

	"github.com/gin-gonic/gin"
)

// EnrichHandler runs the enrichment pipeline over records posted by the caller
type EnrichHandler struct {
	service EnrichmentService
}

// EnrichmentService interface for dependency injection
type EnrichmentService interface {
	Enrich(context.Context, []models.SurveyResponse) ([]models.SurveyResponse, models.EnrichmentSummary, error)
}

// EnrichRequest is the body of POST /enrich
type EnrichRequest struct {
	Responses []models.SurveyResponse `json:"responses" binding:"required"`
}

// EnrichResponse is the reply of POST /enrich
type EnrichResponse struct {
	Responses []models.SurveyResponse  `json:"responses"`
	Summary   models.EnrichmentSummary `json:"summary"`
}

// NewEnrichHandler creates a new enrich handler
func NewEnrichHandler(svc EnrichmentService) *EnrichHandler {
	return &EnrichHandler{service: svc}
}

// Enrich handles POST /enrich requests. Nothing is persisted.
func (h *EnrichHandler) Enrich(c *gin.Context) {
	var req EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be an object with a 'responses' array"})
		return
	}

	responses, summary, err := h.service.Enrich(c.Request.Context(), req.Responses)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "enrichment interrupted"})
		return
	}

	c.JSON(http.StatusOK, EnrichResponse{Responses: responses, Summary: summary})
}
