package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetMissingKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT value FROM settings WHERE key").
		WithArgs("last_monthly_limit_reset").
		WillReturnRows(pgxmock.NewRows([]string{"value"}))

	value, err := repo.Get(context.Background(), "last_monthly_limit_reset")
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_SetAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectExec("INSERT INTO settings .+ ON CONFLICT").
		WithArgs("last_monthly_limit_reset", "2025-06").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT value FROM settings WHERE key").
		WithArgs("last_monthly_limit_reset").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("2025-06"))

	require.NoError(t, repo.Set(context.Background(), "last_monthly_limit_reset", "2025-06"))

	value, err := repo.Get(context.Background(), "last_monthly_limit_reset")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "2025-06", *value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_GetAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT key, value FROM settings").
		WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).
			AddRow("last_monthly_limit_reset", "2025-06").
			AddRow("theme", "dark"))

	settings, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings, 2)
	assert.Equal(t, "dark", settings["theme"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
