package repositories

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations on the transaction log.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction of the account.
	FindTransactionByID(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page of transactions matching query.
	ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error)
}

// TransactionWriter appends to the transaction log.
type TransactionWriter interface {
	// InsertTransactionInTx inserts txn within tx. A duplicate transaction code
	// returns apperrors.ErrTransactionCodeCollision and leaves tx usable.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction log interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
