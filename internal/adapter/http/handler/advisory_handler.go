package handler

import (
	"cash-wallet-tracker/internal/adapter/http/dto"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"
	"cash-wallet-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdvisoryHandler handles collaborator-backed advisory endpoints.
type AdvisoryHandler struct {
	advisorySvc ports.AdvisoryService
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(advisorySvc ports.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisorySvc: advisorySvc}
}

// Classify handles POST /api/v1/advisory/classify.
func (h *AdvisoryHandler) Classify(c *gin.Context) {
	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	classification, err := h.advisorySvc.ClassifyDescription(c.Request.Context(), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classification)
}

// Patterns handles GET /api/v1/advisory/patterns.
func (h *AdvisoryHandler) Patterns(c *gin.Context) {
	insights, err := h.advisorySvc.PatternInsights(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, insights)
}

// Advise handles POST /api/v1/advisory/advise.
func (h *AdvisoryHandler) Advise(c *gin.Context) {
	var req dto.AdviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	answer, err := h.advisorySvc.Advise(c.Request.Context(), req.Question)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"answer": answer})
}
