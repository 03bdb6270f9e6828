package handler

import (
	"cash-wallet-tracker/internal/adapter/http/dto"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"
	"cash-wallet-tracker/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.ledgerSvc.CreateWallet(c.Request.Context(), ports.CreateWalletParams{
		Name:         req.Name,
		Provider:     req.Provider,
		SimSlot:      req.SimSlot,
		PhoneNumber:  req.PhoneNumber,
		PIN:          req.PIN,
		Balance:      req.Balance,
		MonthlyLimit: req.MonthlyLimit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toWalletResponse(wallet))
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.ledgerSvc.ListWallets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponses(wallets))
}

// Get handles GET /api/v1/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	wallet, err := h.ledgerSvc.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// Update handles PUT /api/v1/wallets/:id.
func (h *WalletHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.ledgerSvc.UpdateWallet(c.Request.Context(), ports.UpdateWalletParams{
		WalletID:    id,
		Name:        req.Name,
		Provider:    req.Provider,
		SimSlot:     req.SimSlot,
		PhoneNumber: req.PhoneNumber,
		PIN:         req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// Delete handles DELETE /api/v1/wallets/:id.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.ledgerSvc.DeleteWallet(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CorrectBalance handles POST /api/v1/wallets/:id/correct-balance.
func (h *WalletHandler) CorrectBalance(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CorrectBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.ledgerSvc.CorrectBalance(c.Request.Context(), id, *req.Balance)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// EditLimits handles PUT /api/v1/wallets/:id/limits.
func (h *WalletHandler) EditLimits(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.EditLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.ledgerSvc.EditWalletLimits(c.Request.Context(), id, req.MonthlyLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// VerifyPIN handles POST /api/v1/wallets/:id/verify-pin.
func (h *WalletHandler) VerifyPIN(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.VerifyWalletPIN(c.Request.Context(), id, req.PIN); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"verified": true})
}

// ListTransactions handles GET /api/v1/wallets/:id/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	transactions, err := h.ledgerSvc.ListWalletTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponses(transactions))
}

// pathUUID parses a UUID path parameter, writing a validation error when
// it is malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
