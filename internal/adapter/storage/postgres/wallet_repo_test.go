package postgres

import (
	"context"
	"testing"
	"time"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet() *domain.Wallet {
	return &domain.Wallet{
		ID:             uuid.New(),
		Name:           "Vodafone Cash",
		Provider:       "vodafone",
		SimSlot:        "1",
		PhoneNumber:    "01012345678",
		PinHash:        nil,
		Balance:        25000,
		MonthlyLimit:   200000,
		RemainingLimit: 140000,
		LastUpdated:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletCols() []string {
	return []string{"id", "name", "provider", "sim_slot", "phone_number", "pin_hash",
		"balance", "monthly_limit", "remaining_limit", "last_updated"}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletCols()).AddRow(
		w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
		w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated,
	)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
			w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	result, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.Name, result.Name)
	assert.Equal(t, w.RemainingLimit, result.RemainingLimit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletCols()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w1 := newTestWallet()
	w2 := newTestWallet()
	w2.Name = "Orange Cash"

	rows := pgxmock.NewRows(walletCols()).
		AddRow(w1.ID, w1.Name, w1.Provider, w1.SimSlot, w1.PhoneNumber, w1.PinHash,
			w1.Balance, w1.MonthlyLimit, w1.RemainingLimit, w1.LastUpdated).
		AddRow(w2.ID, w2.Name, w2.Provider, w2.SimSlot, w2.PhoneNumber, w2.PinHash,
			w2.Balance, w2.MonthlyLimit, w2.RemainingLimit, w2.LastUpdated)

	mock.ExpectQuery("SELECT .+ FROM wallets ORDER BY").
		WillReturnRows(rows)

	result, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Orange Cash", result[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id = \\$1 FOR UPDATE").
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET").
		WithArgs(w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
			w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Put_Upserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectExec("INSERT INTO wallets .+ ON CONFLICT").
		WithArgs(w.ID, w.Name, w.Provider, w.SimSlot, w.PhoneNumber, w.PinHash,
			w.Balance, w.MonthlyLimit, w.RemainingLimit, w.LastUpdated).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Put(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Clear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("DELETE FROM wallets").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	err = repo.Clear(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
