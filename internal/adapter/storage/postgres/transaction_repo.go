package postgres

import (
	"context"
	"errors"
	"fmt"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, wallet_id, type, amount, description, reference, date`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a transaction within a ledger transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, type, amount, description, reference, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.Description, t.Reference, t.Date,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Put upserts a transaction outside a ledger transaction.
func (r *TransactionRepo) Put(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, type, amount, description, reference, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			wallet_id = EXCLUDED.wallet_id, type = EXCLUDED.type,
			amount = EXCLUDED.amount, description = EXCLUDED.description,
			reference = EXCLUDED.reference, date = EXCLUDED.date`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.Description, t.Reference, t.Date,
	)
	if err != nil {
		return fmt.Errorf("upsert transaction: %w", err)
	}
	return nil
}

// GetAll fetches every transaction, newest first.
func (r *TransactionRepo) GetAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// GetByID fetches a transaction by its UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Reference, &t.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// GetByWalletID fetches a wallet's transactions via the wallet_id index,
// newest first.
func (r *TransactionRepo) GetByWalletID(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY date DESC, id`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Delete removes a single transaction record.
func (r *TransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// DeleteByWalletID removes a wallet's full history within a transaction.
func (r *TransactionRepo) DeleteByWalletID(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet transactions: %w", err)
	}
	return nil
}

// Clear removes every transaction.
func (r *TransactionRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Reference, &t.Date)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}
