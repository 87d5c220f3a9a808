package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates that a wallet cannot cover the requested amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrConcurrency indicates a retryable conflict: lock wait timeout, deadlock or a
// transaction code collision that survived the internal retry.
var ErrConcurrency = errors.New("concurrent modification")

// ErrPersistence indicates an unexpected storage failure.
var ErrPersistence = errors.New("persistence failure")

// ErrTransactionCodeCollision is returned by the transaction log when the generated
// transaction code already exists. It is retried once by the transfer engine.
var ErrTransactionCodeCollision = errors.New("transaction code collision")

// AppError carries an HTTP-style status code alongside the wrapped cause.
// Codes >= 500 are treated as persistence failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrPersistence) match server-side AppErrors.
func (e *AppError) Is(target error) bool {
	return target == ErrPersistence && e.Code >= http.StatusInternalServerError
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a resource-specific message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError wraps ErrValidation with a field-specific message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewConcurrencyError wraps ErrConcurrency, keeping the underlying cause for logging.
func NewConcurrencyError(message string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrConcurrency, message)
	}
	return fmt.Errorf("%w: %s: %w", ErrConcurrency, message, cause)
}

// InsufficientBalanceError names the wallet that could not cover a transfer.
type InsufficientBalanceError struct {
	WalletKind string
	Balance    decimal.Decimal
	Requested  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in %s wallet", e.WalletKind)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
