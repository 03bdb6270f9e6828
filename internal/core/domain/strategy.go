package domain

import (
	"fmt"
	"math"
)

// Nominal cycle length used for the linear exhaustion projection. The
// projection assumes uniform usage, not the actual historical spend rate.
const cycleDays = 30

// CycleStrategy is the receive/send wallet pairing recommendation that
// maximizes usable monthly transfer capacity.
type CycleStrategy struct {
	ReceiveWallet         *Wallet `json:"receive_wallet,omitempty"`
	SendWallet            *Wallet `json:"send_wallet,omitempty"`
	Recommendation        string  `json:"recommendation"`
	DaysUntilLimitReached int     `json:"days_until_limit_reached,omitempty"`

	// Derived signals for the presentation layer, not stored.
	OptimalSwitchPoint bool `json:"optimal_switch_point"`
	WarningPoint       bool `json:"warning_point"`
}

// PlanCycleStrategy selects the best receive/send wallet pair from a wallet
// set. The receive wallet is the one with the most remaining limit; the send
// wallet is the most exhausted wallet that still has capacity, so it gets
// fully used up before roles rotate.
func PlanCycleStrategy(wallets []Wallet) CycleStrategy {
	if len(wallets) < 2 {
		return CycleStrategy{
			Recommendation: "Add at least two wallets to take advantage of the cycle strategy.",
		}
	}

	receive := &wallets[0]
	for i := range wallets {
		if wallets[i].RemainingLimit > receive.RemainingLimit {
			receive = &wallets[i]
		}
	}

	var send *Wallet
	for i := range wallets {
		w := &wallets[i]
		if w.ID == receive.ID || w.RemainingLimit <= 0 {
			continue
		}
		if send == nil || w.RemainingLimit < send.RemainingLimit {
			send = w
		}
	}

	if send == nil {
		return CycleStrategy{
			ReceiveWallet:  receive,
			Recommendation: fmt.Sprintf("Use another wallet for sending: every wallet except %s has exhausted its monthly limit.", receive.Name),
		}
	}

	pct := send.RemainingPct()
	days := int(math.Ceil(pct / 100 * cycleDays))
	rounded := int(math.Round(pct))

	var recommendation string
	switch {
	case pct < 20:
		recommendation = fmt.Sprintf(
			"Switch wallet roles soon: send wallet %s has only %d left of its monthly limit (%d%%). Receive on %s.",
			send.Name, send.RemainingLimit, rounded, receive.Name)
	case pct < 50:
		recommendation = fmt.Sprintf(
			"You can keep sending from %s and receiving on %s for a while, but the send wallet's remaining limit is getting low (%d%%).",
			send.Name, receive.Name, rounded)
	default:
		recommendation = fmt.Sprintf(
			"The current cycle strategy is optimal. Keep receiving on %s and sending from %s (%d%% of the send limit remains).",
			receive.Name, send.Name, rounded)
	}

	return CycleStrategy{
		ReceiveWallet:         receive,
		SendWallet:            send,
		Recommendation:        recommendation,
		DaysUntilLimitReached: days,
		OptimalSwitchPoint:    receive.Balance >= 80000 && receive.Balance <= 100000 && send.Balance <= 20000,
		WarningPoint:          send.Balance < 20000 && receive.Balance < 80000,
	}
}
