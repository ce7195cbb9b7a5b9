package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"freedaiy-backend/internal/domains/lead"
	"freedaiy-backend/internal/shared/response"
)

// LeadHandler handles HTTP requests for the lead domain
type LeadHandler struct {
	service lead.Service
}

// NewLeadHandler creates a new lead handler instance
func NewLeadHandler(service lead.Service) *LeadHandler {
	return &LeadHandler{service: service}
}

// CreateLead handles POST /api/leads
//
// Writes fail loudly: validation and store failures both surface as a 500
// with {"detail": "..."} — the historical contract this API's callers expect.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req lead.CreateLeadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Failed to create lead")
		response.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}
