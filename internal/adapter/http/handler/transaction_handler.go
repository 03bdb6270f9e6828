package handler

import (
	"time"

	"cash-wallet-tracker/internal/adapter/http/dto"
	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"
	"cash-wallet-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerSvc: ledgerSvc}
}

// Post handles POST /api/v1/wallets/:id/transactions.
func (h *TransactionHandler) Post(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	txn, err := h.ledgerSvc.PostTransaction(c.Request.Context(), ports.PostTransactionParams{
		WalletID:    walletID,
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Reference:   req.Reference,
		Date:        date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.ledgerSvc.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponses(transactions))
}

// Delete handles DELETE /api/v1/transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.ledgerSvc.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
