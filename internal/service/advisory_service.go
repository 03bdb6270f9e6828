package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/rs/zerolog"
)

// Category returned when the advisory collaborator cannot classify a
// description.
const fallbackCategory = "Other"

// AdvisoryServiceImpl implements ports.AdvisoryService. Every collaborator
// call degrades to a local heuristic instead of failing the request.
type AdvisoryServiceImpl struct {
	client     ports.AdvisoryClient
	cache      ports.AdvisoryCache
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewAdvisoryService creates a new AdvisoryServiceImpl.
func NewAdvisoryService(
	client ports.AdvisoryClient,
	cache ports.AdvisoryCache,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *AdvisoryServiceImpl {
	return &AdvisoryServiceImpl{
		client:     client,
		cache:      cache,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// ClassifyDescription suggests a spending category for a transaction
// description. Results are cached so repeated descriptions skip the
// collaborator.
func (s *AdvisoryServiceImpl) ClassifyDescription(ctx context.Context, description string) (*ports.AdvisoryClassification, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperror.Validation("description is required")
	}

	cached, err := s.cache.GetClassification(ctx, description)
	if err != nil {
		s.log.Warn().Err(err).Msg("classification cache read failed, falling through")
	}
	if cached != nil {
		return cached, nil
	}

	classification, err := s.client.ClassifyTransaction(ctx, description)
	if err != nil {
		s.log.Warn().Err(err).Str("description", description).Msg("advisory classification failed, using fallback")
		return &ports.AdvisoryClassification{Category: fallbackCategory, Confidence: 0}, nil
	}

	if err := s.cache.SetClassification(ctx, description, classification, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("classification cache write failed")
	}
	return classification, nil
}

// PatternInsights returns collaborator-generated observations over the full
// transaction history, or a locally derived summary when the collaborator
// is unreachable.
func (s *AdvisoryServiceImpl) PatternInsights(ctx context.Context) (*ports.AdvisoryPatternInsights, error) {
	transactions, err := s.txRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list transactions: %w", err))
	}

	insights, err := s.client.AnalyzePatterns(ctx, transactions)
	if err != nil {
		s.log.Warn().Err(err).Msg("advisory pattern analysis failed, using local summary")
		return localPatternInsights(transactions), nil
	}
	return insights, nil
}

// Advise answers a free-form question about the user's wallets. When the
// collaborator is unreachable the local cycle strategy recommendation is
// returned instead.
func (s *AdvisoryServiceImpl) Advise(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", apperror.Validation("question is required")
	}

	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return "", apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}
	transactions, err := s.txRepo.GetAll(ctx)
	if err != nil {
		return "", apperror.ErrPersistence(fmt.Errorf("list transactions: %w", err))
	}

	answer, err := s.client.Advise(ctx, wallets, transactions, question)
	if err != nil {
		s.log.Warn().Err(err).Msg("advisory request failed, using local strategy")
		return domain.PlanCycleStrategy(wallets).Recommendation, nil
	}
	return answer, nil
}

// localPatternInsights derives a reduced insight set from the on-device
// analyzer when the collaborator cannot be reached.
func localPatternInsights(transactions []domain.Transaction) *ports.AdvisoryPatternInsights {
	pattern := domain.AnalyzeTransactionPatterns(transactions)
	insights := &ports.AdvisoryPatternInsights{
		CategoryBreakdown: map[string]float64{},
		Summary:           "Advisory service unavailable. Showing locally computed activity patterns.",
	}
	if !pattern.Sufficient {
		insights.Summary = "Not enough transactions to analyze patterns yet."
		return insights
	}
	insights.FrequentDays = []string{pattern.MostActiveDay}
	var total int64
	for i := range transactions {
		total += transactions[i].Magnitude()
	}
	insights.AverageTransactionSize = float64(total) / float64(len(transactions))
	return insights
}
