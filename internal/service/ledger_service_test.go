package service

import (
	"context"
	"testing"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/internal/core/ports/mocks"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	notifRepo  *mocks.MockNotificationRepository
	hasher     *mocks.MockPINHasher
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		notifRepo:  mocks.NewMockNotificationRepository(ctrl),
		hasher:     mocks.NewMockPINHasher(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(
		d.walletRepo, d.txRepo, d.notifRepo, d.hasher, d.transactor, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func trackedWallet(balance, monthlyLimit, remainingLimit int64) *domain.Wallet {
	return &domain.Wallet{
		ID:             uuid.New(),
		Name:           "Vodafone Cash",
		Provider:       "vodafone",
		PhoneNumber:    "01012345678",
		Balance:        balance,
		MonthlyLimit:   monthlyLimit,
		RemainingLimit: remainingLimit,
		LastUpdated:    time.Now().UTC(),
	}
}

// ==================== CreateWallet Tests ====================

func TestLedgerService_CreateWallet_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.hasher.EXPECT().Hash("1234").Return("$argon2id$hash", nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, "Vodafone Cash", w.Name)
			assert.Equal(t, int64(5000), w.Balance)
			assert.Equal(t, int64(150000), w.MonthlyLimit)
			assert.Equal(t, int64(150000), w.RemainingLimit)
			require.NotNil(t, w.PinHash)
			assert.Equal(t, "$argon2id$hash", *w.PinHash)
			return nil
		})
	d.notifRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	wallet, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{
		Name:         "Vodafone Cash",
		Provider:     "vodafone",
		PhoneNumber:  "01012345678",
		PIN:          "1234",
		Balance:      5000,
		MonthlyLimit: 150000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(150000), wallet.RemainingLimit)
}

func TestLedgerService_CreateWallet_DefaultsMonthlyLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.notifRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	wallet, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{Name: "Orange Cash"})

	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultMonthlyLimit), wallet.MonthlyLimit)
	assert.Equal(t, int64(domain.DefaultMonthlyLimit), wallet.RemainingLimit)
	assert.Nil(t, wallet.PinHash)
}

func TestLedgerService_CreateWallet_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params ports.CreateWalletParams
	}{
		{"empty name", ports.CreateWalletParams{Name: ""}},
		{"short phone", ports.CreateWalletParams{Name: "W", PhoneNumber: "0101234"}},
		{"landline prefix", ports.CreateWalletParams{Name: "W", PhoneNumber: "02012345678"}},
		{"negative balance", ports.CreateWalletParams{Name: "W", Balance: -100}},
		{"negative limit", ports.CreateWalletParams{Name: "W", MonthlyLimit: -1}},
		{"alpha pin", ports.CreateWalletParams{Name: "W", PIN: "12ab"}},
		{"long pin", ports.CreateWalletParams{Name: "W", PIN: "1234567"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupLedgerService(t)
			defer d.ctrl.Finish()

			_, err := d.svc.CreateWallet(context.Background(), tt.params)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "WAL_004", appErr.Code)
		})
	}
}

// ==================== PostTransaction Tests ====================

func TestLedgerService_PostTransaction_Deposit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(10000, 200000, 200000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, int64(15000), w.Balance)
			assert.Equal(t, int64(200000), w.RemainingLimit)
			return nil
		})
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.PostTransaction(ctx, ports.PostTransactionParams{
		WalletID:    wallet.ID,
		Type:        domain.TransactionTypeDeposit,
		Amount:      5000,
		Description: "salary top-up",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5000), txn.Amount)
	assert.False(t, txn.Date.IsZero())
}

func TestLedgerService_PostTransaction_WithdrawalConsumesLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(50000, 200000, 120000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, int64(30000), w.Balance)
			assert.Equal(t, int64(100000), w.RemainingLimit)
			return nil
		})
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	_, err := d.svc.PostTransaction(ctx, ports.PostTransactionParams{
		WalletID: wallet.ID,
		Type:     domain.TransactionTypeWithdrawal,
		Amount:   20000,
	})

	require.NoError(t, err)
}

func TestLedgerService_PostTransaction_RemainingLimitMayGoNegative(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(100000, 200000, 5000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, int64(-15000), w.RemainingLimit)
			return nil
		})
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.Notification) error {
			assert.Equal(t, domain.NotificationTypeWarning, n.Type)
			return nil
		})

	_, err := d.svc.PostTransaction(ctx, ports.PostTransactionParams{
		WalletID: wallet.ID,
		Type:     domain.TransactionTypeTransfer,
		Amount:   20000,
	})

	require.NoError(t, err)
}

func TestLedgerService_PostTransaction_LowLimitWarning(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	// 50000 of 200000 remaining; a 20000 transfer lands at 15% and warns.
	wallet := trackedWallet(80000, 200000, 50000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.PostTransaction(ctx, ports.PostTransactionParams{
		WalletID: wallet.ID,
		Type:     domain.TransactionTypeTransfer,
		Amount:   20000,
	})

	require.NoError(t, err)
}

func TestLedgerService_PostTransaction_WalletNotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, gomock.Any()).Return(nil, nil)

	_, err := d.svc.PostTransaction(ctx, ports.PostTransactionParams{
		WalletID: uuid.New(),
		Type:     domain.TransactionTypeDeposit,
		Amount:   100,
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}

func TestLedgerService_PostTransaction_InvalidInput(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.PostTransaction(context.Background(), ports.PostTransactionParams{
		WalletID: uuid.New(),
		Type:     domain.TransactionTypeDeposit,
		Amount:   0,
	})
	assert.Error(t, err)

	_, err = d.svc.PostTransaction(context.Background(), ports.PostTransactionParams{
		WalletID: uuid.New(),
		Type:     domain.TransactionType("loan"),
		Amount:   100,
	})
	assert.Error(t, err)
}

// ==================== CorrectBalance Tests ====================

func TestLedgerService_CorrectBalance_DownwardConsumesLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(50000, 200000, 100000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	got, err := d.svc.CorrectBalance(ctx, wallet.ID, 30000)

	require.NoError(t, err)
	assert.Equal(t, int64(30000), got.Balance)
	assert.Equal(t, int64(80000), got.RemainingLimit)
}

func TestLedgerService_CorrectBalance_ClampsLimitAtZero(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(100000, 200000, 10000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	got, err := d.svc.CorrectBalance(ctx, wallet.ID, 50000)

	require.NoError(t, err)
	assert.Equal(t, int64(0), got.RemainingLimit)
}

func TestLedgerService_CorrectBalance_UpwardLeavesLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(30000, 200000, 120000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	got, err := d.svc.CorrectBalance(ctx, wallet.ID, 45000)

	require.NoError(t, err)
	assert.Equal(t, int64(45000), got.Balance)
	assert.Equal(t, int64(120000), got.RemainingLimit)
}

// ==================== EditWalletLimits Tests ====================

func TestLedgerService_EditWalletLimits_ProportionalRescale(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(0, 200000, 150000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	got, err := d.svc.EditWalletLimits(ctx, wallet.ID, 100000)

	require.NoError(t, err)
	assert.Equal(t, int64(100000), got.MonthlyLimit)
	assert.Equal(t, int64(75000), got.RemainingLimit)
}

func TestLedgerService_EditWalletLimits_InvalidLimit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.EditWalletLimits(context.Background(), uuid.New(), 0)
	assert.Error(t, err)
}

func TestRescaleRemaining(t *testing.T) {
	tests := []struct {
		name                            string
		oldLimit, oldRemaining, newLimit int64
		want                            int64
	}{
		{"half consumed survives halving", 200000, 100000, 100000, 50000},
		{"rounds to nearest", 3, 1, 100, 33},
		{"negative remaining clamps to zero", 200000, -5000, 100000, 0},
		{"zero old limit resets to new", 0, 0, 100000, 100000},
		{"never exceeds new limit", 100000, 100000, 50000, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rescaleRemaining(tt.oldLimit, tt.oldRemaining, tt.newLimit))
		})
	}
}

// ==================== DeleteWallet / DeleteTransaction Tests ====================

func TestLedgerService_DeleteWallet_CascadesTransactionsFirst(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(1000, 200000, 200000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	gomock.InOrder(
		d.txRepo.EXPECT().DeleteByWalletID(ctx, tx, wallet.ID).Return(nil),
		d.walletRepo.EXPECT().Delete(ctx, tx, wallet.ID).Return(nil),
	)

	require.NoError(t, d.svc.DeleteWallet(ctx, wallet.ID))
}

func TestLedgerService_DeleteWallet_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, gomock.Any()).Return(nil, nil)

	err := d.svc.DeleteWallet(ctx, uuid.New())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}

func TestLedgerService_DeleteTransaction_DoesNotReverseWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()

	// No wallet repo expectations: the record disappears, the balance stays.
	d.txRepo.EXPECT().GetByID(ctx, txnID).Return(&domain.Transaction{
		ID:       txnID,
		WalletID: uuid.New(),
		Type:     domain.TransactionTypeWithdrawal,
		Amount:   5000,
	}, nil)
	d.txRepo.EXPECT().Delete(ctx, txnID).Return(nil)

	require.NoError(t, d.svc.DeleteTransaction(ctx, txnID))
}

func TestLedgerService_DeleteTransaction_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txnID := uuid.New()

	d.txRepo.EXPECT().GetByID(ctx, txnID).Return(nil, nil)

	err := d.svc.DeleteTransaction(ctx, txnID)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
}

// ==================== VerifyWalletPIN Tests ====================

func TestLedgerService_VerifyWalletPIN(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hash := "$argon2id$hash"
	wallet := trackedWallet(0, 200000, 200000)
	wallet.PinHash = &hash

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil).Times(2)
	d.hasher.EXPECT().Verify("1234", hash).Return(true, nil)
	d.hasher.EXPECT().Verify("9999", hash).Return(false, nil)

	require.NoError(t, d.svc.VerifyWalletPIN(ctx, wallet.ID, "1234"))

	err := d.svc.VerifyWalletPIN(ctx, wallet.ID, "9999")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_005", appErr.Code)
}

func TestLedgerService_VerifyWalletPIN_NoPINSet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(0, 200000, 200000)

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)

	assert.Error(t, d.svc.VerifyWalletPIN(ctx, wallet.ID, "1234"))
}

// ==================== UpdateWallet Tests ====================

func TestLedgerService_UpdateWallet_Metadata(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := trackedWallet(5000, 200000, 130000)
	tx := &mockTx{}

	newName := "Etisalat Cash"
	newPhone := "01198765432"

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	got, err := d.svc.UpdateWallet(ctx, ports.UpdateWalletParams{
		WalletID:    wallet.ID,
		Name:        &newName,
		PhoneNumber: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Etisalat Cash", got.Name)
	assert.Equal(t, "01198765432", got.PhoneNumber)
	assert.Equal(t, int64(5000), got.Balance)
	assert.Equal(t, int64(130000), got.RemainingLimit)
}
