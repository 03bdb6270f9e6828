package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testWallet(balance, monthlyLimit, remainingLimit int64) *Wallet {
	return &Wallet{
		ID:             uuid.New(),
		Name:           "Main Phone",
		Balance:        balance,
		MonthlyLimit:   monthlyLimit,
		RemainingLimit: remainingLimit,
	}
}

func TestClassifyWallet(t *testing.T) {
	tests := []struct {
		name   string
		wallet *Wallet
		want   Classification
	}{
		{"high balance, high limit", testWallet(60000, 200000, 150000), IdealForSending},
		{"low balance", testWallet(5000, 200000, 100000), IdealForReceiving},
		{"high balance, exhausted limit", testWallet(30000, 200000, 10000), OverLimit},
		{"low-ish balance, untouched limit", testWallet(15000, 200000, 190000), Unused},
		{"middle of the road", testWallet(30000, 200000, 100000), Balanced},
		{"exactly at send balance threshold is not sending", testWallet(50000, 200000, 150000), Balanced},
		{"zero monthly limit treated as fully exhausted", testWallet(60000, 0, 0), OverLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := ClassifyWallet(tt.wallet)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestClassifyWallet_RuleOrderPrecedence(t *testing.T) {
	// balance=5000, remainingPct=95 matches both the receiving rule and the
	// unused rule; the receiving rule is evaluated first and must win.
	w := testWallet(5000, 200000, 190000)

	got, _ := ClassifyWallet(w)
	assert.Equal(t, IdealForReceiving, got)
}

func TestClassifyWallet_Deterministic(t *testing.T) {
	w := testWallet(60000, 200000, 150000)

	first, firstReason := ClassifyWallet(w)
	second, secondReason := ClassifyWallet(w)

	assert.Equal(t, first, second)
	assert.Equal(t, firstReason, secondReason)
}

func TestClassification_Label_Exhaustive(t *testing.T) {
	for _, c := range []Classification{IdealForSending, IdealForReceiving, Balanced, Unused, OverLimit} {
		assert.NotEqual(t, "Unknown", c.Label())
	}
	assert.Equal(t, "Unknown", Classification("bogus").Label())
}

func TestClassifyWallets_PreservesOrder(t *testing.T) {
	wallets := []Wallet{
		*testWallet(60000, 200000, 150000),
		*testWallet(5000, 200000, 100000),
	}
	wallets[0].Name = "first"
	wallets[1].Name = "second"

	got := ClassifyWallets(wallets)

	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, IdealForSending, got[0].Classification)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, IdealForReceiving, got[1].Classification)
}

func TestWallet_RemainingPct(t *testing.T) {
	assert.InDelta(t, 95.0, testWallet(0, 200000, 190000).RemainingPct(), 0.001)
	assert.Zero(t, testWallet(0, 0, 0).RemainingPct(), "zero monthly limit must not divide")
}

func TestWallet_LimitIntact(t *testing.T) {
	assert.True(t, testWallet(0, 200000, 200000).LimitIntact())
	assert.True(t, testWallet(0, 200000, 0).LimitIntact())
	assert.False(t, testWallet(0, 200000, -500).LimitIntact())
	assert.False(t, testWallet(0, 200000, 200001).LimitIntact())
}
