package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet & Ledger (WAL) ----

func ErrWalletNotFound() *AppError {
	return New("WAL_001", "Wallet not found", http.StatusNotFound)
}

func ErrTransactionNotFound() *AppError {
	return New("WAL_002", "Transaction not found", http.StatusNotFound)
}

func ErrNotificationNotFound() *AppError {
	return New("WAL_003", "Notification not found", http.StatusNotFound)
}

// Validation returns a WAL_004 validation error with a specific message.
func Validation(message string) *AppError {
	return New("WAL_004", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_004", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidPIN() *AppError {
	return New("WAL_005", "Wallet PIN does not match", http.StatusForbidden)
}

// ---- Advisory collaborator (ADV) ----

// ErrAdvisoryUnavailable marks the AI collaborator as unreachable. Callers
// recover with a locally computed fallback; this error never aborts a
// ledger operation.
func ErrAdvisoryUnavailable(err error) *AppError {
	return Wrap("ADV_001", "Advisory service unavailable", http.StatusServiceUnavailable, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Persistence (SYS) ----

// ErrPersistence wraps a failed store operation. The operation is considered
// not-completed and safe to retry.
func ErrPersistence(err error) *AppError {
	return Wrap("SYS_001", "Persistent store operation failed", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
