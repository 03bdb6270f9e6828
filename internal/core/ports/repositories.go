package ports

import (
	"context"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside ledger transaction blocks with
// pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetAll(ctx context.Context) ([]domain.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// Update writes the wallet's mutable fields within a transaction.
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	// Put upserts a wallet outside a ledger transaction (reset, import).
	Put(ctx context.Context, wallet *domain.Wallet) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// TransactionRepository defines persistence operations for transactions.
// The wallet_id secondary index backs GetByWalletID and DeleteByWalletID.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	// Put upserts a transaction outside a ledger transaction (import).
	Put(ctx context.Context, transaction *domain.Transaction) error
	GetAll(ctx context.Context) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByWalletID(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWalletID(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) error
	Clear(ctx context.Context) error
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetAll(ctx context.Context) ([]domain.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// SettingsRepository is a key/value store for application settings.
type SettingsRepository interface {
	// Get returns nil when the key does not exist.
	Get(ctx context.Context, key string) (*string, error)
	Set(ctx context.Context, key string, value string) error
	GetAll(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
