package domain

import (
	"fmt"
	"time"
)

// LimitPrediction estimates when a wallet's monthly limit will run out
// based on its recent spend rate.
type LimitPrediction struct {
	WillExhaustLimit   bool   `json:"will_exhaust_limit"`
	DaysUntilExhausted int    `json:"days_until_exhausted,omitempty"`
	RecommendedAction  string `json:"recommended_action"`
}

const (
	predictionMinTransactions = 3
	spendRateWindowDays       = 7
)

// PredictLimitExhaustion projects limit exhaustion for one wallet from its
// withdrawal/transfer rate over the last seven days. Unlike the cycle
// strategy's uniform projection, this uses the actual observed spend rate.
func PredictLimitExhaustion(w *Wallet, transactions []Transaction, now time.Time) LimitPrediction {
	if float64(w.RemainingLimit) >= float64(w.MonthlyLimit)*0.9 {
		return LimitPrediction{
			WillExhaustLimit:  false,
			RecommendedAction: "The remaining limit is very high. Keep using this wallet.",
		}
	}

	var walletTxns []Transaction
	for i := range transactions {
		if transactions[i].WalletID == w.ID {
			walletTxns = append(walletTxns, transactions[i])
		}
	}
	if len(walletTxns) < predictionMinTransactions {
		return LimitPrediction{
			WillExhaustLimit:  true,
			RecommendedAction: "Not enough transactions for an accurate prediction. Watch the remaining limit.",
		}
	}

	windowStart := now.AddDate(0, 0, -spendRateWindowDays)
	var totalSpent int64
	var recentCount int
	for i := range walletTxns {
		t := &walletTxns[i]
		if t.Date.Before(windowStart) {
			continue
		}
		recentCount++
		if t.Type == TransactionTypeWithdrawal || t.Type == TransactionTypeTransfer {
			totalSpent += t.Magnitude()
		}
	}

	daysCount := recentCount
	if daysCount > spendRateWindowDays {
		daysCount = spendRateWindowDays
	}
	if daysCount == 0 || totalSpent == 0 {
		return LimitPrediction{
			WillExhaustLimit:  false,
			RecommendedAction: "No recent withdrawals recorded, so no accurate prediction is possible.",
		}
	}

	dailyAverage := float64(totalSpent) / float64(daysCount)
	days := int(float64(w.RemainingLimit) / dailyAverage)

	var action string
	switch {
	case days <= 3:
		action = "Switch your send wallet immediately to avoid hitting the limit."
	case days <= 7:
		action = "Plan to switch your send wallet within the coming week."
	default:
		action = fmt.Sprintf("You can keep using this wallet for roughly %d more days.", days)
	}

	return LimitPrediction{
		WillExhaustLimit:   true,
		DaysUntilExhausted: days,
		RecommendedAction:  action,
	}
}
