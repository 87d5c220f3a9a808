package services

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

// TransferWriterSvc defines the money-moving operations.
type TransferWriterSvc interface {
	// Transfer moves amount between two wallets of the account, charging the tiered
	// profit, and records the transaction. All or nothing.
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error)

	// CashIn transfers from GCASH to CASH after checking that the account exists.
	CashIn(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error)

	// CashOut transfers from CASH to GCASH after checking that the account exists.
	CashOut(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error)
}

// TransferReaderSvc defines read operations on the transaction log.
type TransferReaderSvc interface {
	// GetTransaction retrieves one transaction of the account.
	GetTransaction(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page of the account's transactions.
	ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferWriterSvc
	TransferReaderSvc
}
