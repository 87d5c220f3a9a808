package repositories

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
)

// AccountReader exposes the account lookups the ledger depends on.
// Accounts themselves are created by the authentication service.
type AccountReader interface {
	// AccountExists reports whether an account with the given ID exists.
	AccountExists(ctx context.Context, accountID string) (bool, error)

	// FindAccountByID retrieves an account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}
