package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMonthlyLimit is the regulatory transfer cap applied to new wallets
// when no explicit limit is given.
const DefaultMonthlyLimit int64 = 200000

// Wallet represents a tracked mobile-money account with a balance and a
// monthly transfer cap. Amounts are whole EGP units.
type Wallet struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Provider       string    `json:"provider"` // e.g. "vodafone-cash"
	SimSlot        string    `json:"sim_slot"`
	PhoneNumber    string    `json:"phone_number"`
	PinHash        *string   `json:"-"` // Argon2id hash, never exposed
	Balance        int64     `json:"balance"`
	MonthlyLimit   int64     `json:"monthly_limit"`
	RemainingLimit int64     `json:"remaining_limit"`
	LastUpdated    time.Time `json:"last_updated"`
}

// RemainingPct returns the remaining limit as a percentage of the monthly cap.
func (w *Wallet) RemainingPct() float64 {
	if w.MonthlyLimit <= 0 {
		return 0
	}
	return float64(w.RemainingLimit) / float64(w.MonthlyLimit) * 100
}

// LimitIntact reports whether the wallet satisfies the at-rest invariant
// 0 <= RemainingLimit <= MonthlyLimit. A withdrawal exceeding the remaining
// limit may drive the limit negative until the next monthly reset.
func (w *Wallet) LimitIntact() bool {
	return w.RemainingLimit >= 0 && w.RemainingLimit <= w.MonthlyLimit
}
