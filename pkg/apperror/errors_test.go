package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_001", "Wallet not found", http.StatusNotFound),
			expected: "[WAL_001] Wallet not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Store error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Store error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_004", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"WalletNotFound", ErrWalletNotFound(), "WAL_001", 404},
		{"TransactionNotFound", ErrTransactionNotFound(), "WAL_002", 404},
		{"NotificationNotFound", ErrNotificationNotFound(), "WAL_003", 404},
		{"InvalidAmount", ErrInvalidAmount(), "WAL_004", 400},
		{"InvalidPIN", ErrInvalidPIN(), "WAL_005", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestValidation_CarriesMessage(t *testing.T) {
	err := Validation("balance must be non-negative")
	assert.Equal(t, "WAL_004", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Message, "balance")
}

func TestAdvisoryError(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")
	err := ErrAdvisoryUnavailable(inner)
	assert.Equal(t, "ADV_001", err.Code)
	assert.Equal(t, 503, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	persistErr := ErrPersistence(inner)
	assert.Equal(t, "SYS_001", persistErr.Code)
	assert.Equal(t, 500, persistErr.HTTPStatus)
	assert.True(t, errors.Is(persistErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_002", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
