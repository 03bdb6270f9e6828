package handler

import (
	"time"

	"cash-wallet-tracker/internal/adapter/http/dto"
	"cash-wallet-tracker/internal/core/domain"
)

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:             w.ID.String(),
		Name:           w.Name,
		Provider:       w.Provider,
		SimSlot:        w.SimSlot,
		PhoneNumber:    w.PhoneNumber,
		HasPIN:         w.PinHash != nil,
		Balance:        w.Balance,
		MonthlyLimit:   w.MonthlyLimit,
		RemainingLimit: w.RemainingLimit,
		RemainingPct:   w.RemainingPct(),
		LastUpdated:    w.LastUpdated.Format(time.RFC3339),
	}
}

func toWalletResponses(wallets []domain.Wallet) []dto.WalletResponse {
	out := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		out = append(out, toWalletResponse(&wallets[i]))
	}
	return out
}

func toTransactionResponse(t *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID.String(),
		WalletID:    t.WalletID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Reference:   t.Reference,
		Date:        t.Date.Format(time.RFC3339),
	}
}

func toTransactionResponses(transactions []domain.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, toTransactionResponse(&transactions[i]))
	}
	return out
}

func toNotificationResponse(n *domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:      n.ID.String(),
		Title:   n.Title,
		Message: n.Message,
		Type:    string(n.Type),
		Date:    n.Date.Format(time.RFC3339),
		IsRead:  n.IsRead,
	}
}

func toClassificationResponses(classifications []domain.WalletClassification) []dto.ClassificationResponse {
	out := make([]dto.ClassificationResponse, 0, len(classifications))
	for _, c := range classifications {
		out = append(out, dto.ClassificationResponse{
			WalletID:       c.WalletID,
			Name:           c.Name,
			Classification: string(c.Classification),
			Label:          c.Label,
			Reason:         c.Reason,
		})
	}
	return out
}
