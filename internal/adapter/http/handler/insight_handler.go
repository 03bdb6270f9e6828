package handler

import (
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles classification, strategy and pattern endpoints.
type InsightHandler struct {
	insightSvc ports.InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightSvc ports.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// Classifications handles GET /api/v1/insights/classifications.
func (h *InsightHandler) Classifications(c *gin.Context) {
	classifications, err := h.insightSvc.Classifications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toClassificationResponses(classifications))
}

// CycleStrategy handles GET /api/v1/insights/strategy.
func (h *InsightHandler) CycleStrategy(c *gin.Context) {
	strategy, err := h.insightSvc.CycleStrategy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, strategy)
}

// TransactionPatterns handles GET /api/v1/insights/patterns.
func (h *InsightHandler) TransactionPatterns(c *gin.Context) {
	pattern, err := h.insightSvc.TransactionPatterns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pattern)
}

// PortfolioAnalysis handles GET /api/v1/insights/analysis.
func (h *InsightHandler) PortfolioAnalysis(c *gin.Context) {
	analysis, err := h.insightSvc.PortfolioAnalysis(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, analysis)
}

// LimitPrediction handles GET /api/v1/wallets/:id/prediction.
func (h *InsightHandler) LimitPrediction(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	prediction, err := h.insightSvc.LimitPrediction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, prediction)
}
