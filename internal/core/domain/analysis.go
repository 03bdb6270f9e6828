package domain

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// LimitWarning flags a wallet approaching its monthly cap.
type LimitWarning struct {
	WalletID     uuid.UUID `json:"wallet_id"`
	Name         string    `json:"name"`
	RemainingPct float64   `json:"remaining_pct"`
}

// WalletAnalysis is the portfolio-level view across all wallets.
type WalletAnalysis struct {
	TotalBalance        int64 `json:"total_balance"`
	TotalLimit          int64 `json:"total_limit"`
	TotalRemainingLimit int64 `json:"total_remaining_limit"`

	// Share of the portfolio balance / of its own monthly limit, percent.
	BalanceDistribution map[uuid.UUID]float64 `json:"balance_distribution"`
	LimitDistribution   map[uuid.UUID]float64 `json:"limit_distribution"`

	MostUsedWalletID  uuid.UUID `json:"most_used_wallet_id,omitempty"`
	LeastUsedWalletID uuid.UUID `json:"least_used_wallet_id,omitempty"`

	LimitWarnings    []LimitWarning         `json:"limit_warnings"`
	BalanceImbalance bool                   `json:"balance_imbalance"`
	Recommendations  []string               `json:"recommendations"`
	Classifications  []WalletClassification `json:"classifications"`
}

const (
	limitWarningPct     = 30 // remaining-limit percentage that triggers a warning
	imbalanceConcentPct = 50 // single-wallet balance share that flags imbalance
)

// AnalyzeWallets computes portfolio totals, distributions, warnings and
// rule-based recommendations for a wallet set.
func AnalyzeWallets(wallets []Wallet) WalletAnalysis {
	if len(wallets) == 0 {
		return WalletAnalysis{
			BalanceDistribution: map[uuid.UUID]float64{},
			LimitDistribution:   map[uuid.UUID]float64{},
			LimitWarnings:       []LimitWarning{},
			Recommendations:     []string{"Add a wallet to start tracking balances and limits."},
			Classifications:     []WalletClassification{},
		}
	}

	a := WalletAnalysis{
		BalanceDistribution: make(map[uuid.UUID]float64, len(wallets)),
		LimitDistribution:   make(map[uuid.UUID]float64, len(wallets)),
		LimitWarnings:       []LimitWarning{},
	}

	for i := range wallets {
		a.TotalBalance += wallets[i].Balance
		a.TotalLimit += wallets[i].MonthlyLimit
		a.TotalRemainingLimit += wallets[i].RemainingLimit
	}

	mostUsed, leastUsed := 0, 0
	var maxShare float64
	for i := range wallets {
		w := &wallets[i]
		var share float64
		if a.TotalBalance > 0 {
			share = float64(w.Balance) / float64(a.TotalBalance) * 100
		}
		a.BalanceDistribution[w.ID] = share
		if share > maxShare {
			maxShare = share
		}

		pct := w.RemainingPct()
		a.LimitDistribution[w.ID] = pct
		if pct < wallets[mostUsed].RemainingPct() {
			mostUsed = i
		}
		if pct > wallets[leastUsed].RemainingPct() {
			leastUsed = i
		}
		if pct < limitWarningPct {
			a.LimitWarnings = append(a.LimitWarnings, LimitWarning{
				WalletID:     w.ID,
				Name:         w.Name,
				RemainingPct: pct,
			})
		}
	}
	a.MostUsedWalletID = wallets[mostUsed].ID
	a.LeastUsedWalletID = wallets[leastUsed].ID
	a.BalanceImbalance = maxShare > imbalanceConcentPct
	a.Classifications = ClassifyWallets(wallets)

	for _, warning := range a.LimitWarnings {
		a.Recommendations = append(a.Recommendations, fmt.Sprintf(
			"Wallet %s is approaching its monthly cap (%d%% remaining). Consider sending from another wallet.",
			warning.Name, int(math.Round(warning.RemainingPct))))
	}
	if a.BalanceImbalance {
		a.Recommendations = append(a.Recommendations,
			"Spread your balance more evenly across wallets to reduce risk.")
	}
	if len(wallets) == 1 {
		a.Recommendations = append(a.Recommendations,
			"Add a second wallet to use the cycle strategy and increase your usable monthly limit.")
	}
	if len(wallets) >= 2 {
		a.Recommendations = append(a.Recommendations, pairingRecommendations(a.Classifications)...)
	}

	return a
}

// pairingRecommendations derives send/receive pairing advice from the
// classified wallet list.
func pairingRecommendations(classified []WalletClassification) []string {
	var sender, receiver, overLimit *WalletClassification
	for i := range classified {
		c := &classified[i]
		switch c.Classification {
		case IdealForSending:
			if sender == nil {
				sender = c
			}
		case IdealForReceiving:
			if receiver == nil {
				receiver = c
			}
		case OverLimit:
			if overLimit == nil {
				overLimit = c
			}
		}
	}

	var recs []string
	if sender != nil && receiver != nil {
		recs = append(recs, fmt.Sprintf(
			"Use wallet %s for sending and wallet %s for receiving to get the most out of your monthly limits.",
			sender.Name, receiver.Name))
	}
	if overLimit != nil {
		recs = append(recs, fmt.Sprintf(
			"Avoid sending from wallet %s: its monthly limit is nearly exhausted.", overLimit.Name))
	}
	return recs
}
