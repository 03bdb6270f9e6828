package domain

// Classification is a derived category label summarizing a wallet's current
// usage state. It is computed fresh from a wallet snapshot on every request
// and never persisted.
type Classification string

const (
	IdealForSending   Classification = "ideal_for_sending"
	IdealForReceiving Classification = "ideal_for_receiving"
	Balanced          Classification = "balanced"
	Unused            Classification = "unused"
	OverLimit         Classification = "over_limit"
)

// Label returns the human-readable name for the classification. The switch is
// exhaustive over the closed set of categories.
func (c Classification) Label() string {
	switch c {
	case IdealForSending:
		return "Ideal for sending"
	case IdealForReceiving:
		return "Ideal for receiving"
	case Balanced:
		return "Balanced"
	case Unused:
		return "Unused"
	case OverLimit:
		return "Over limit"
	}
	return "Unknown"
}

// Classification thresholds, in whole EGP and percent.
const (
	sendBalanceFloor    int64   = 50000
	receiveBalanceCeil  int64   = 10000
	midBalanceThreshold int64   = 20000
	sendPctFloor        float64 = 50
	overLimitPctCeil    float64 = 10
	unusedPctFloor      float64 = 90
)

// ClassifyWallet maps a wallet snapshot to a classification and a
// human-readable justification. Rules are evaluated in order and the first
// match wins; reordering them changes the outcome for wallets matching more
// than one predicate (a low-balance wallet with an untouched limit is
// IdealForReceiving, not Unused).
func ClassifyWallet(w *Wallet) (Classification, string) {
	pct := w.RemainingPct()

	if w.Balance > sendBalanceFloor && pct > sendPctFloor {
		return IdealForSending, "high balance and enough limit room for large transfers"
	}
	if w.Balance < receiveBalanceCeil {
		return IdealForReceiving, "low balance, suitable to receive incoming transfers"
	}
	if w.Balance > midBalanceThreshold && pct < overLimitPctCeil {
		return OverLimit, "high balance but the monthly limit is nearly exhausted"
	}
	if w.Balance < midBalanceThreshold && pct > unusedPctFloor {
		return Unused, "underutilized wallet, the monthly limit is barely touched"
	}
	return Balanced, "balance and remaining limit are in a healthy range"
}

// WalletClassification pairs a wallet with its computed classification, for
// list views and analysis output.
type WalletClassification struct {
	WalletID       string         `json:"wallet_id"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Label          string         `json:"label"`
	Reason         string         `json:"reason"`
}

// ClassifyWallets classifies every wallet in the slice, preserving order.
func ClassifyWallets(wallets []Wallet) []WalletClassification {
	out := make([]WalletClassification, 0, len(wallets))
	for i := range wallets {
		c, reason := ClassifyWallet(&wallets[i])
		out = append(out, WalletClassification{
			WalletID:       wallets[i].ID.String(),
			Name:           wallets[i].Name,
			Classification: c,
			Label:          c.Label(),
			Reason:         reason,
		})
	}
	return out
}
