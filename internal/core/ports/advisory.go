package ports

import (
	"context"
	"time"

	"cash-wallet-tracker/internal/core/domain"
)

// AdvisoryClassification is a suggested spending category for a
// transaction description.
type AdvisoryClassification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// AdvisoryPatternInsights holds behavioural observations produced by the
// external advisory collaborator from the full transaction history.
type AdvisoryPatternInsights struct {
	FrequentDays           []string           `json:"frequentDays"`
	AverageTransactionSize float64            `json:"averageTransactionSize"`
	CategoryBreakdown      map[string]float64 `json:"categoryBreakdown"`
	UnusualActivity        []string           `json:"unusualActivity"`
	Summary                string             `json:"summary"`
}

// AdvisoryClient talks to the external advisory collaborator. Implementations
// must honour the context deadline; callers treat any error as a signal to
// fall back to local heuristics.
type AdvisoryClient interface {
	ClassifyTransaction(ctx context.Context, description string) (*AdvisoryClassification, error)
	AnalyzePatterns(ctx context.Context, transactions []domain.Transaction) (*AdvisoryPatternInsights, error)
	Advise(ctx context.Context, wallets []domain.Wallet, transactions []domain.Transaction, question string) (string, error)
}

// AdvisoryCache stores advisory classifications so repeated descriptions do
// not hit the collaborator again. Get returns nil on a cache miss.
type AdvisoryCache interface {
	GetClassification(ctx context.Context, description string) (*AdvisoryClassification, error)
	SetClassification(ctx context.Context, description string, classification *AdvisoryClassification, ttl time.Duration) error
}
