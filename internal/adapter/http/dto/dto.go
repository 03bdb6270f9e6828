package dto

import "time"

// CreateWalletRequest is the request body for registering a wallet.
type CreateWalletRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Provider     string `json:"provider" binding:"max=50"`
	SimSlot      string `json:"sim_slot" binding:"max=10"`
	PhoneNumber  string `json:"phone_number" binding:"omitempty,len=11"`
	PIN          string `json:"pin,omitempty" binding:"omitempty,min=4,max=6"`
	Balance      int64  `json:"balance" binding:"gte=0"`
	MonthlyLimit int64  `json:"monthly_limit" binding:"gte=0"`
}

// UpdateWalletRequest is the request body for editing wallet metadata.
// Absent fields are left unchanged.
type UpdateWalletRequest struct {
	Name        *string `json:"name,omitempty"`
	Provider    *string `json:"provider,omitempty"`
	SimSlot     *string `json:"sim_slot,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	PIN         *string `json:"pin,omitempty"`
}

// PostTransactionRequest is the request body for recording a cash movement.
type PostTransactionRequest struct {
	Type        string     `json:"type" binding:"required,oneof=deposit withdrawal transfer"`
	Amount      int64      `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description" binding:"max=500"`
	Reference   *string    `json:"reference,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// CorrectBalanceRequest is the request body for balance reconciliation.
type CorrectBalanceRequest struct {
	Balance *int64 `json:"balance" binding:"required,gte=0"`
}

// EditLimitsRequest is the request body for changing the monthly cap.
type EditLimitsRequest struct {
	MonthlyLimit int64 `json:"monthly_limit" binding:"required,gt=0"`
}

// VerifyPINRequest is the request body for checking a wallet PIN.
type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required,min=4,max=6"`
}

// ClassifyRequest is the request body for advisory classification.
type ClassifyRequest struct {
	Description string `json:"description" binding:"required,max=500"`
}

// AdviseRequest is the request body for a free-form advisory question.
type AdviseRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}

// WalletResponse is the response body for a wallet.
type WalletResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Provider       string  `json:"provider,omitempty"`
	SimSlot        string  `json:"sim_slot,omitempty"`
	PhoneNumber    string  `json:"phone_number,omitempty"`
	HasPIN         bool    `json:"has_pin"`
	Balance        int64   `json:"balance"`
	MonthlyLimit   int64   `json:"monthly_limit"`
	RemainingLimit int64   `json:"remaining_limit"`
	RemainingPct   float64 `json:"remaining_pct"`
	LastUpdated    string  `json:"last_updated"`
}

// TransactionResponse is the response body for a transaction.
type TransactionResponse struct {
	ID          string  `json:"id"`
	WalletID    string  `json:"wallet_id"`
	Type        string  `json:"type"`
	Amount      int64   `json:"amount"`
	Description string  `json:"description,omitempty"`
	Reference   *string `json:"reference,omitempty"`
	Date        string  `json:"date"`
}

// NotificationResponse is the response body for a notification.
type NotificationResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	IsRead  bool   `json:"is_read"`
}

// ClassificationResponse is the response body for one wallet classification.
type ClassificationResponse struct {
	WalletID       string `json:"wallet_id"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	Label          string `json:"label"`
	Reason         string `json:"reason"`
}

// ResetResponse is the response body for a reset check.
type ResetResponse struct {
	Performed      bool `json:"performed"`
	WalletsUpdated int  `json:"wallets_updated"`
}
