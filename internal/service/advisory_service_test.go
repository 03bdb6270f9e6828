package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const advisoryTestTTL = 24 * time.Hour

type advisoryTestDeps struct {
	svc        *AdvisoryServiceImpl
	client     *mocks.MockAdvisoryClient
	cache      *mocks.MockAdvisoryCache
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	ctrl       *gomock.Controller
}

func setupAdvisoryService(t *testing.T) *advisoryTestDeps {
	ctrl := gomock.NewController(t)
	d := &advisoryTestDeps{
		client:     mocks.NewMockAdvisoryClient(ctrl),
		cache:      mocks.NewMockAdvisoryCache(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewAdvisoryService(d.client, d.cache, d.walletRepo, d.txRepo, advisoryTestTTL, zerolog.Nop())
	return d
}

func TestAdvisoryService_ClassifyDescription_CacheHit(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &ports.AdvisoryClassification{Category: "Groceries", Confidence: 0.92}

	d.cache.EXPECT().GetClassification(ctx, "carrefour checkout").Return(cached, nil)

	got, err := d.svc.ClassifyDescription(ctx, "carrefour checkout")

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestAdvisoryService_ClassifyDescription_MissCallsAndCaches(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fresh := &ports.AdvisoryClassification{Category: "Bills", Confidence: 0.7}

	d.cache.EXPECT().GetClassification(ctx, "electricity bill").Return(nil, nil)
	d.client.EXPECT().ClassifyTransaction(ctx, "electricity bill").Return(fresh, nil)
	d.cache.EXPECT().SetClassification(ctx, "electricity bill", fresh, advisoryTestTTL).Return(nil)

	got, err := d.svc.ClassifyDescription(ctx, "electricity bill")

	require.NoError(t, err)
	assert.Equal(t, "Bills", got.Category)
}

func TestAdvisoryService_ClassifyDescription_FallbackOnClientError(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.cache.EXPECT().GetClassification(ctx, "weird payment").Return(nil, nil)
	d.client.EXPECT().ClassifyTransaction(ctx, "weird payment").Return(nil, errors.New("timeout"))

	got, err := d.svc.ClassifyDescription(ctx, "weird payment")

	require.NoError(t, err)
	assert.Equal(t, "Other", got.Category)
	assert.Zero(t, got.Confidence)
}

func TestAdvisoryService_ClassifyDescription_EmptyDescription(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.ClassifyDescription(context.Background(), "   ")
	assert.Error(t, err)
}

func TestAdvisoryService_PatternInsights_LocalFallback(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	base := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // Monday
	txns := make([]domain.Transaction, 0, 6)
	for i := 0; i < 6; i++ {
		txns = append(txns, domain.Transaction{
			ID:       uuid.New(),
			WalletID: uuid.New(),
			Type:     domain.TransactionTypeDeposit,
			Amount:   1000,
			Date:     base,
		})
	}

	d.txRepo.EXPECT().GetAll(ctx).Return(txns, nil)
	d.client.EXPECT().AnalyzePatterns(ctx, txns).Return(nil, errors.New("connection refused"))

	insights, err := d.svc.PatternInsights(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Monday"}, insights.FrequentDays)
	assert.InDelta(t, 1000.0, insights.AverageTransactionSize, 0.001)
}

func TestAdvisoryService_Advise_FallsBackToCycleStrategy(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallets := []domain.Wallet{
		{ID: uuid.New(), Name: "A", Balance: 60000, MonthlyLimit: 200000, RemainingLimit: 180000},
		{ID: uuid.New(), Name: "B", Balance: 10000, MonthlyLimit: 200000, RemainingLimit: 40000},
	}

	d.walletRepo.EXPECT().GetAll(ctx).Return(wallets, nil)
	d.txRepo.EXPECT().GetAll(ctx).Return([]domain.Transaction{}, nil)
	d.client.EXPECT().Advise(ctx, wallets, []domain.Transaction{}, "which wallet should receive?").
		Return("", errors.New("unavailable"))

	answer, err := d.svc.Advise(ctx, "which wallet should receive?")

	require.NoError(t, err)
	assert.Contains(t, answer, "A")
}

func TestAdvisoryService_Advise_Success(t *testing.T) {
	d := setupAdvisoryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.walletRepo.EXPECT().GetAll(ctx).Return([]domain.Wallet{}, nil)
	d.txRepo.EXPECT().GetAll(ctx).Return([]domain.Transaction{}, nil)
	d.client.EXPECT().Advise(ctx, []domain.Wallet{}, []domain.Transaction{}, "how am I doing?").
		Return("You are within your limits.", nil)

	answer, err := d.svc.Advise(ctx, "how am I doing?")

	require.NoError(t, err)
	assert.Equal(t, "You are within your limits.", answer)
}
