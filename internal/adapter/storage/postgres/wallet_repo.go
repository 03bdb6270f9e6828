package postgres

import (
	"context"
	"errors"
	"fmt"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, name, provider, sim_slot, phone_number, pin_hash,
	balance, monthly_limit, remaining_limit, last_updated`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, name, provider, sim_slot, phone_number, pin_hash,
		balance, monthly_limit, remaining_limit, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
		w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetAll fetches every wallet ordered by creation name.
func (r *WalletRepo) GetAll(ctx context.Context) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := scanWallet(rows, &w); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	if err := scanWallet(r.pool.QueryRow(ctx, query, id), w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w := &domain.Wallet{}
	if err := scanWallet(tx.QueryRow(ctx, query, id), w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// Update writes the wallet's mutable fields within a transaction.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets SET name = $2, provider = $3, sim_slot = $4,
		phone_number = $5, pin_hash = $6, balance = $7, monthly_limit = $8,
		remaining_limit = $9, last_updated = $10
		WHERE id = $1`

	_, err := tx.Exec(ctx, query,
		w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
		w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	return nil
}

// Put upserts a wallet outside a ledger transaction.
func (r *WalletRepo) Put(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, name, provider, sim_slot, phone_number, pin_hash,
		balance, monthly_limit, remaining_limit, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, provider = EXCLUDED.provider,
			sim_slot = EXCLUDED.sim_slot, phone_number = EXCLUDED.phone_number,
			pin_hash = EXCLUDED.pin_hash, balance = EXCLUDED.balance,
			monthly_limit = EXCLUDED.monthly_limit,
			remaining_limit = EXCLUDED.remaining_limit,
			last_updated = EXCLUDED.last_updated`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
		w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert wallet: %w", err)
	}
	return nil
}

// Delete removes a wallet within a transaction.
func (r *WalletRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	return nil
}

// Clear removes every wallet.
func (r *WalletRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM wallets`); err != nil {
		return fmt.Errorf("clear wallets: %w", err)
	}
	return nil
}

func scanWallet(row pgx.Row, w *domain.Wallet) error {
	return row.Scan(
		&w.ID, &w.Name, &w.Provider, &w.SimSlot, &w.PhoneNumber, &w.PinHash,
		&w.Balance, &w.MonthlyLimit, &w.RemainingLimit, &w.LastUpdated,
	)
}
