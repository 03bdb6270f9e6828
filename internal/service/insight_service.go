package service

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InsightServiceImpl implements ports.InsightService on top of the pure
// domain analyzers.
type InsightServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewInsightService creates a new InsightServiceImpl.
func NewInsightService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	log zerolog.Logger,
) *InsightServiceImpl {
	return &InsightServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Classifications labels every wallet by its current cycling role.
func (s *InsightServiceImpl) Classifications(ctx context.Context) ([]domain.WalletClassification, error) {
	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}
	return domain.ClassifyWallets(wallets), nil
}

// CycleStrategy recommends a receive/send wallet pairing for the current
// ledger state.
func (s *InsightServiceImpl) CycleStrategy(ctx context.Context) (*domain.CycleStrategy, error) {
	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}
	strategy := domain.PlanCycleStrategy(wallets)
	return &strategy, nil
}

// TransactionPatterns reports activity patterns over the full history.
func (s *InsightServiceImpl) TransactionPatterns(ctx context.Context) (*domain.TransactionPattern, error) {
	transactions, err := s.txRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list transactions: %w", err))
	}
	pattern := domain.AnalyzeTransactionPatterns(transactions)
	return &pattern, nil
}

// PortfolioAnalysis summarizes the whole wallet portfolio.
func (s *InsightServiceImpl) PortfolioAnalysis(ctx context.Context) (*domain.WalletAnalysis, error) {
	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}
	analysis := domain.AnalyzeWallets(wallets)
	return &analysis, nil
}

// LimitPrediction projects when a wallet's remaining limit runs out at the
// recent spending rate.
func (s *InsightServiceImpl) LimitPrediction(ctx context.Context, walletID uuid.UUID) (*domain.LimitPrediction, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	transactions, err := s.txRepo.GetByWalletID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallet transactions: %w", err))
	}
	prediction := domain.PredictLimitExhaustion(wallet, transactions, s.now())
	return &prediction, nil
}
