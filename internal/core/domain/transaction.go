package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// Valid reports whether t is one of the three known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry belonging to exactly one wallet.
// Amount is posted as a positive magnitude; imported records may carry a
// signed amount for transfers, where the sign encodes direction.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	WalletID    uuid.UUID       `json:"wallet_id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Reference   *string         `json:"reference,omitempty"`
	Date        time.Time       `json:"date"`
}

// IsInflow reports whether the transaction counts as an incoming amount:
// a deposit, or a positively signed transfer.
func (t *Transaction) IsInflow() bool {
	return t.Type == TransactionTypeDeposit ||
		(t.Type == TransactionTypeTransfer && t.Amount > 0)
}

// IsOutflow reports whether the transaction counts as an outgoing amount:
// a withdrawal, or a negatively signed transfer.
func (t *Transaction) IsOutflow() bool {
	return t.Type == TransactionTypeWithdrawal ||
		(t.Type == TransactionTypeTransfer && t.Amount < 0)
}

// Magnitude returns the absolute amount.
func (t *Transaction) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}
