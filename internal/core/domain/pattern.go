package domain

import "time"

// MinPatternTransactions is the minimum history size for pattern analysis.
// Below it the analyzer returns a placeholder instead of noisy statistics.
const MinPatternTransactions = 5

// NotAvailable marks a day field with no computable value.
const NotAvailable = "not available"

// DayActivity aggregates one weekday's transactions.
type DayActivity struct {
	Count           int   `json:"count"`
	DepositTotal    int64 `json:"deposit_total"`
	WithdrawalTotal int64 `json:"withdrawal_total"`
}

// TransactionPattern summarizes day-of-week and flow-rate behavior across a
// transaction history.
type TransactionPattern struct {
	Sufficient bool `json:"sufficient"`

	// Per-weekday share of the category grand total, in percent, keyed by
	// English weekday name (Sunday..Saturday).
	DepositDayPct    map[string]float64 `json:"deposit_day_pct"`
	WithdrawalDayPct map[string]float64 `json:"withdrawal_day_pct"`

	// Average amount per transaction of that type.
	AverageDeposit    float64 `json:"average_deposit"`
	AverageWithdrawal float64 `json:"average_withdrawal"`

	BiggestDeposit    int64 `json:"biggest_deposit"`
	BiggestWithdrawal int64 `json:"biggest_withdrawal"`

	// Weekday with the highest/lowest transaction count (not amount).
	MostActiveDay  string `json:"most_active_day"`
	LeastActiveDay string `json:"least_active_day"`
}

// AnalyzeTransactionPatterns aggregates a transaction history (any wallet)
// by day of week. Deposits are deposit-typed or positively signed transfer
// entries; withdrawals are withdrawal-typed or negatively signed transfer
// entries, counted by absolute magnitude.
func AnalyzeTransactionPatterns(transactions []Transaction) TransactionPattern {
	if len(transactions) < MinPatternTransactions {
		return TransactionPattern{
			Sufficient:       false,
			DepositDayPct:    map[string]float64{},
			WithdrawalDayPct: map[string]float64{},
			MostActiveDay:    NotAvailable,
			LeastActiveDay:   NotAvailable,
		}
	}

	var days [7]DayActivity
	var totalDeposits, totalWithdrawals int64
	var depositCount, withdrawalCount int
	var biggestDeposit, biggestWithdrawal int64

	for i := range transactions {
		t := &transactions[i]
		day := int(t.Date.Weekday())
		days[day].Count++

		switch {
		case t.IsInflow():
			amount := t.Magnitude()
			days[day].DepositTotal += amount
			totalDeposits += amount
			depositCount++
			if amount > biggestDeposit {
				biggestDeposit = amount
			}
		case t.IsOutflow():
			amount := t.Magnitude()
			days[day].WithdrawalTotal += amount
			totalWithdrawals += amount
			withdrawalCount++
			if amount > biggestWithdrawal {
				biggestWithdrawal = amount
			}
		}
	}

	depositDayPct := make(map[string]float64, 7)
	withdrawalDayPct := make(map[string]float64, 7)
	mostActive, leastActive := 0, 0
	for d := 0; d < 7; d++ {
		name := time.Weekday(d).String()
		if totalDeposits > 0 {
			depositDayPct[name] = float64(days[d].DepositTotal) / float64(totalDeposits) * 100
		} else {
			depositDayPct[name] = 0
		}
		if totalWithdrawals > 0 {
			withdrawalDayPct[name] = float64(days[d].WithdrawalTotal) / float64(totalWithdrawals) * 100
		} else {
			withdrawalDayPct[name] = 0
		}
		// Strict comparisons keep ties deterministic: the earliest weekday wins.
		if days[d].Count > days[mostActive].Count {
			mostActive = d
		}
		if days[d].Count < days[leastActive].Count {
			leastActive = d
		}
	}

	var avgDeposit, avgWithdrawal float64
	if depositCount > 0 {
		avgDeposit = float64(totalDeposits) / float64(depositCount)
	}
	if withdrawalCount > 0 {
		avgWithdrawal = float64(totalWithdrawals) / float64(withdrawalCount)
	}

	return TransactionPattern{
		Sufficient:        true,
		DepositDayPct:     depositDayPct,
		WithdrawalDayPct:  withdrawalDayPct,
		AverageDeposit:    avgDeposit,
		AverageWithdrawal: avgWithdrawal,
		BiggestDeposit:    biggestDeposit,
		BiggestWithdrawal: biggestWithdrawal,
		MostActiveDay:     time.Weekday(mostActive).String(),
		LeastActiveDay:    time.Weekday(leastActive).String(),
	}
}
