package ports

import (
	"context"
	"time"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
)

// CreateWalletParams carries the input for LedgerService.CreateWallet.
type CreateWalletParams struct {
	Name         string
	Provider     string
	SimSlot      string
	PhoneNumber  string
	PIN          string
	Balance      int64
	MonthlyLimit int64
}

// UpdateWalletParams carries the input for LedgerService.UpdateWallet.
// Nil fields are left unchanged.
type UpdateWalletParams struct {
	WalletID    uuid.UUID
	Name        *string
	Provider    *string
	SimSlot     *string
	PhoneNumber *string
	PIN         *string
}

// PostTransactionParams carries the input for LedgerService.PostTransaction.
// Amount is the positive magnitude of the movement.
type PostTransactionParams struct {
	WalletID    uuid.UUID
	Type        domain.TransactionType
	Amount      int64
	Description string
	Reference   *string
	Date        time.Time
}

// LedgerService is the authoritative record of wallets and their
// transaction history.
type LedgerService interface {
	CreateWallet(ctx context.Context, params CreateWalletParams) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, params UpdateWalletParams) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
	DeleteWallet(ctx context.Context, walletID uuid.UUID) error
	VerifyWalletPIN(ctx context.Context, walletID uuid.UUID, pin string) error

	PostTransaction(ctx context.Context, params PostTransactionParams) (*domain.Transaction, error)
	CorrectBalance(ctx context.Context, walletID uuid.UUID, actualBalance int64) (*domain.Wallet, error)
	EditWalletLimits(ctx context.Context, walletID uuid.UUID, newMonthlyLimit int64) (*domain.Wallet, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListWalletTransactions(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error
}

// InsightService derives classifications, strategies and pattern reports
// from the current ledger state.
type InsightService interface {
	Classifications(ctx context.Context) ([]domain.WalletClassification, error)
	CycleStrategy(ctx context.Context) (*domain.CycleStrategy, error)
	TransactionPatterns(ctx context.Context) (*domain.TransactionPattern, error)
	PortfolioAnalysis(ctx context.Context) (*domain.WalletAnalysis, error)
	LimitPrediction(ctx context.Context, walletID uuid.UUID) (*domain.LimitPrediction, error)
}

// ResetOutcome reports what a reset check did.
type ResetOutcome struct {
	Performed      bool
	WalletsUpdated int
}

// ResetService restores every wallet's remaining limit to its monthly
// limit at the start of each month.
type ResetService interface {
	CheckAndReset(ctx context.Context, now time.Time) (*ResetOutcome, error)
}

// BackupService exports and imports the full application state.
type BackupService interface {
	Export(ctx context.Context) (*domain.BackupDocument, error)
	Import(ctx context.Context, doc *domain.BackupDocument) error
}

// AdvisoryService exposes collaborator-backed insights with local
// fallbacks when the collaborator is unreachable.
type AdvisoryService interface {
	ClassifyDescription(ctx context.Context, description string) (*AdvisoryClassification, error)
	PatternInsights(ctx context.Context) (*AdvisoryPatternInsights, error)
	Advise(ctx context.Context, question string) (string, error)
}

// NotificationService manages the in-app notification feed.
type NotificationService interface {
	List(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
	Delete(ctx context.Context, notificationID uuid.UUID) error
}

// PINHasher hashes and verifies wallet PINs.
type PINHasher interface {
	Hash(pin string) (string, error)
	Verify(pin, encodedHash string) (bool, error)
}
