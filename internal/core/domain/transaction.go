package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType tells which direction money moved between the two wallets.
type TransactionType string

const (
	// CashIn moves money from the GCASH wallet into the CASH wallet.
	CashIn TransactionType = "CASH_IN"
	// CashOut moves money from the CASH wallet into the GCASH wallet.
	CashOut TransactionType = "CASH_OUT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == CashIn || t == CashOut
}

// Wallets returns the source and destination wallet kinds implied by the type.
func (t TransactionType) Wallets() (from WalletKind, to WalletKind) {
	if t == CashIn {
		return WalletGCash, WalletCash
	}
	return WalletCash, WalletGCash
}

// Transaction is an immutable record of a completed transfer. Profit is derived from
// the fee schedule in force when the transfer ran and is never recomputed.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Profit          decimal.Decimal `json:"profit"`
	FeeSeparated    bool            `json:"feeSeparated"`
	TransactionCode string          `json:"transactionCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransferMetadata holds the caller-supplied descriptive fields of a transfer.
type TransferMetadata struct {
	SeparateFee     bool
	ReferenceNumber string
	CustomerName    string
	CustomerPhone   string
	Description     string
}

// TransferRequest is the input of the ledger transfer engine.
type TransferRequest struct {
	AccountID       string
	TransactionType TransactionType
	Amount          decimal.Decimal
	From            WalletKind
	To              WalletKind
	TransactionDate time.Time
	Metadata        TransferMetadata
}

// TransferResult reports the balances after a committed transfer.
type TransferResult struct {
	From            WalletKind      `json:"from"`
	To              WalletKind      `json:"to"`
	FromBalance     decimal.Decimal `json:"fromBalance"`
	ToBalance       decimal.Decimal `json:"toBalance"`
	TransactionType TransactionType `json:"type"`
	Transaction     Transaction     `json:"data"`
}

// TransactionSortField is the closed set of columns a transaction listing may sort by.
type TransactionSortField string

const (
	SortByTransactionDate TransactionSortField = "transactionDate"
	SortByAmount          TransactionSortField = "amount"
	SortByProfit          TransactionSortField = "profit"
	SortByCreatedAt       TransactionSortField = "createdAt"
)

// IsValid reports whether f is a supported sort field.
func (f TransactionSortField) IsValid() bool {
	switch f {
	case SortByTransactionDate, SortByAmount, SortByProfit, SortByCreatedAt:
		return true
	}
	return false
}

// SortDirection is ASC or DESC.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// TransactionQuery describes one page of an account's transaction log.
type TransactionQuery struct {
	AccountID string
	Type      *TransactionType
	Search    string
	SortBy    TransactionSortField
	Direction SortDirection
	Limit     int
	Offset    int
}

// TransactionPage is one page of transactions plus the total number of matches.
type TransactionPage struct {
	Transactions []Transaction
	Total        int
}

// Validate checks the preconditions of a transfer. It runs before any lock is taken.
func (r TransferRequest) Validate(now time.Time) error {
	if r.AccountID == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if !r.TransactionType.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, r.TransactionType)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !r.From.IsValid() || !r.To.IsValid() {
		return fmt.Errorf("%w: unknown wallet kind (from %q, to %q)", apperrors.ErrValidation, r.From, r.To)
	}
	if r.From == r.To {
		return fmt.Errorf("%w: source and destination wallets must differ", apperrors.ErrValidation)
	}
	if r.TransactionDate.After(now) {
		return fmt.Errorf("%w: transaction date cannot be in the future", apperrors.ErrValidation)
	}
	return nil
}
