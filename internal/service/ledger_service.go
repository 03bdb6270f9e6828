package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Remaining limit percentage below which a posting emits a warning
// notification.
const lowLimitWarningPct = 20.0

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	notifRepo  ports.NotificationRepository
	hasher     ports.PINHasher
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	notifRepo ports.NotificationRepository,
	hasher ports.PINHasher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		notifRepo:  notifRepo,
		hasher:     hasher,
		transactor: transactor,
		log:        log,
	}
}

// CreateWallet registers a new wallet with its remaining limit set to the
// full monthly limit.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, params ports.CreateWalletParams) (*domain.Wallet, error) {
	if params.Name == "" {
		return nil, apperror.Validation("wallet name is required")
	}
	if params.PhoneNumber != "" && !validEgyptianMobile(params.PhoneNumber) {
		return nil, apperror.Validation("phone number must be 11 digits starting with 01")
	}
	if params.Balance < 0 {
		return nil, apperror.Validation("balance cannot be negative")
	}
	monthlyLimit := params.MonthlyLimit
	if monthlyLimit == 0 {
		monthlyLimit = domain.DefaultMonthlyLimit
	}
	if monthlyLimit < 0 {
		return nil, apperror.Validation("monthly limit must be positive")
	}

	var pinHash *string
	if params.PIN != "" {
		if !validPIN(params.PIN) {
			return nil, apperror.Validation("PIN must be 4 to 6 digits")
		}
		hashed, err := s.hasher.Hash(params.PIN)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
		}
		pinHash = &hashed
	}

	wallet := &domain.Wallet{
		ID:             uuid.New(),
		Name:           params.Name,
		Provider:       params.Provider,
		SimSlot:        params.SimSlot,
		PhoneNumber:    params.PhoneNumber,
		PinHash:        pinHash,
		Balance:        params.Balance,
		MonthlyLimit:   monthlyLimit,
		RemainingLimit: monthlyLimit,
		LastUpdated:    time.Now().UTC(),
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("create wallet: %w", err))
	}

	s.notify(ctx, "Wallet added", fmt.Sprintf("%s is now being tracked.", wallet.Name), domain.NotificationTypeSuccess)

	s.log.Info().Str("wallet_id", wallet.ID.String()).Str("name", wallet.Name).Msg("wallet created")
	return wallet, nil
}

// UpdateWallet edits wallet metadata. Balance and limit fields have their
// own operations and are never touched here.
func (s *LedgerServiceImpl) UpdateWallet(ctx context.Context, params ports.UpdateWalletParams) (*domain.Wallet, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, params.WalletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, apperror.Validation("wallet name is required")
		}
		wallet.Name = *params.Name
	}
	if params.Provider != nil {
		wallet.Provider = *params.Provider
	}
	if params.SimSlot != nil {
		wallet.SimSlot = *params.SimSlot
	}
	if params.PhoneNumber != nil {
		if *params.PhoneNumber != "" && !validEgyptianMobile(*params.PhoneNumber) {
			return nil, apperror.Validation("phone number must be 11 digits starting with 01")
		}
		wallet.PhoneNumber = *params.PhoneNumber
	}
	if params.PIN != nil {
		if *params.PIN == "" {
			wallet.PinHash = nil
		} else {
			if !validPIN(*params.PIN) {
				return nil, apperror.Validation("PIN must be 4 to 6 digits")
			}
			hashed, err := s.hasher.Hash(*params.PIN)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
			}
			wallet.PinHash = &hashed
		}
	}
	wallet.LastUpdated = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("update wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}
	return wallet, nil
}

func (s *LedgerServiceImpl) GetWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

func (s *LedgerServiceImpl) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// DeleteWallet removes a wallet and its full transaction history in one
// database transaction, history first.
func (s *LedgerServiceImpl) DeleteWallet(ctx context.Context, walletID uuid.UUID) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrWalletNotFound()
	}

	if err := s.txRepo.DeleteByWalletID(ctx, dbTx, walletID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("delete wallet transactions: %w", err))
	}
	if err := s.walletRepo.Delete(ctx, dbTx, walletID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("delete wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("wallet_id", walletID.String()).Str("name", wallet.Name).Msg("wallet deleted")
	return nil
}

// VerifyWalletPIN checks a PIN against the wallet's stored hash.
func (s *LedgerServiceImpl) VerifyWalletPIN(ctx context.Context, walletID uuid.UUID, pin string) error {
	wallet, err := s.GetWallet(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet.PinHash == nil {
		return apperror.Validation("wallet has no PIN set")
	}
	ok, err := s.hasher.Verify(pin, *wallet.PinHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify pin: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidPIN()
	}
	return nil
}

// PostTransaction applies a cash movement to a wallet. Deposits raise the
// balance. Withdrawals and transfers lower the balance and consume the
// remaining monthly limit, which is allowed to go negative when a posting
// exceeds it.
func (s *LedgerServiceImpl) PostTransaction(ctx context.Context, params ports.PostTransactionParams) (*domain.Transaction, error) {
	if !params.Type.Valid() {
		return nil, apperror.Validation("unknown transaction type")
	}
	if params.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, params.WalletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	switch params.Type {
	case domain.TransactionTypeDeposit:
		wallet.Balance += params.Amount
	default:
		wallet.Balance -= params.Amount
		wallet.RemainingLimit -= params.Amount
	}
	wallet.LastUpdated = time.Now().UTC()

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	txn := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Type:        params.Type,
		Amount:      params.Amount,
		Description: params.Description,
		Reference:   params.Reference,
		Date:        date,
	}

	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("update wallet: %w", err))
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("create transaction: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}

	if txn.IsOutflow() && wallet.RemainingPct() < lowLimitWarningPct {
		s.notify(ctx, "Monthly limit running low",
			fmt.Sprintf("%s has %d EGP of its monthly limit left.", wallet.Name, wallet.RemainingLimit),
			domain.NotificationTypeWarning)
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("type", string(txn.Type)).
		Int64("amount", txn.Amount).
		Int64("remaining_limit", wallet.RemainingLimit).
		Msg("transaction posted")
	return txn, nil
}

// CorrectBalance reconciles the tracked balance with the amount actually
// observed on the phone. A downward correction also consumes remaining
// limit, clamped at zero. An upward correction leaves the limit untouched.
func (s *LedgerServiceImpl) CorrectBalance(ctx context.Context, walletID uuid.UUID, actualBalance int64) (*domain.Wallet, error) {
	if actualBalance < 0 {
		return nil, apperror.Validation("balance cannot be negative")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	difference := actualBalance - wallet.Balance
	wallet.Balance = actualBalance
	if difference < 0 {
		remaining := wallet.RemainingLimit + difference
		if remaining < 0 {
			remaining = 0
		}
		wallet.RemainingLimit = remaining
	}
	wallet.LastUpdated = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("update wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Int64("difference", difference).
		Msg("balance corrected")
	return wallet, nil
}

// EditWalletLimits changes the monthly cap and rescales the remaining limit
// proportionally, so mid-month edits keep the same fraction consumed.
func (s *LedgerServiceImpl) EditWalletLimits(ctx context.Context, walletID uuid.UUID, newMonthlyLimit int64) (*domain.Wallet, error) {
	if newMonthlyLimit <= 0 {
		return nil, apperror.Validation("monthly limit must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	wallet.RemainingLimit = rescaleRemaining(wallet.MonthlyLimit, wallet.RemainingLimit, newMonthlyLimit)
	wallet.MonthlyLimit = newMonthlyLimit
	wallet.LastUpdated = time.Now().UTC()

	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("update wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("commit tx: %w", err))
	}
	return wallet, nil
}

func (s *LedgerServiceImpl) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list transactions: %w", err))
	}
	return transactions, nil
}

func (s *LedgerServiceImpl) ListWalletTransactions(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
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
	return transactions, nil
}

// DeleteTransaction removes the record only. Wallet balance and remaining
// limit keep the effect of the deleted posting.
func (s *LedgerServiceImpl) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	txn, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return apperror.ErrTransactionNotFound()
	}
	if err := s.txRepo.Delete(ctx, transactionID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("delete transaction: %w", err))
	}
	return nil
}

// notify records a notification best effort. A failed insert never fails
// the ledger operation.
func (s *LedgerServiceImpl) notify(ctx context.Context, title, message string, kind domain.NotificationType) {
	n := &domain.Notification{
		ID:      uuid.New(),
		Title:   title,
		Message: message,
		Type:    kind,
		Date:    time.Now().UTC(),
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.log.Warn().Err(err).Str("title", title).Msg("notification insert failed")
	}
}

// rescaleRemaining keeps the consumed fraction constant across a limit
// change, rounding to the nearest whole pound and clamping to [0, newLimit].
func rescaleRemaining(oldLimit, oldRemaining, newLimit int64) int64 {
	if oldLimit <= 0 {
		return newLimit
	}
	scaled := int64(math.Round(float64(newLimit) * float64(oldRemaining) / float64(oldLimit)))
	if scaled < 0 {
		return 0
	}
	if scaled > newLimit {
		return newLimit
	}
	return scaled
}

func validEgyptianMobile(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return phone[0] == '0' && phone[1] == '1'
}

func validPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
