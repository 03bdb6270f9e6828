package handler

import (
	"net/http"
	"time"

	"cash-wallet-tracker/internal/adapter/http/dto"
	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"
	"cash-wallet-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles reset, backup and health endpoints.
type SystemHandler struct {
	resetSvc  ports.ResetService
	backupSvc ports.BackupService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(resetSvc ports.ResetService, backupSvc ports.BackupService) *SystemHandler {
	return &SystemHandler{resetSvc: resetSvc, backupSvc: backupSvc}
}

// TriggerReset handles POST /api/v1/system/reset-check. The service decides
// whether a reset is actually due.
func (h *SystemHandler) TriggerReset(c *gin.Context) {
	outcome, err := h.resetSvc.CheckAndReset(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ResetResponse{
		Performed:      outcome.Performed,
		WalletsUpdated: outcome.WalletsUpdated,
	})
}

// ExportBackup handles GET /api/v1/system/backup.
func (h *SystemHandler) ExportBackup(c *gin.Context) {
	doc, err := h.backupSvc.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc)
}

// ImportBackup handles POST /api/v1/system/backup.
func (h *SystemHandler) ImportBackup(c *gin.Context) {
	var doc domain.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.backupSvc.Import(c.Request.Context(), &doc); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// HealthCheck returns a handler that pings every backing dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
