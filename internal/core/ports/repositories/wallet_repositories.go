package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallets outside of a transfer.
type WalletReader interface {
	// FindWalletsByAccount lists the wallets of an account ordered by kind.
	FindWalletsByAccount(ctx context.Context, accountID string) ([]domain.Wallet, error)

	// FindWallet retrieves one wallet. Returns apperrors.ErrNotFound if absent.
	FindWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallets outside of a transfer.
type WalletWriter interface {
	// SaveWallet inserts a new wallet. Returns apperrors.ErrDuplicate if the account
	// already has a wallet of that kind.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// EnsureWallet returns the wallet, creating it with a zero balance first if needed.
	EnsureWallet(ctx context.Context, accountID string, kind domain.WalletKind, now time.Time) (*domain.Wallet, error)
}

// WalletTransactionSupport defines the locked operations used by the transfer engine
// and the balance adjustment operation.
type WalletTransactionSupport interface {
	// LockWalletInTx selects the wallet FOR UPDATE within tx. Returns
	// apperrors.ErrNotFound if absent; it never creates a wallet.
	LockWalletInTx(ctx context.Context, tx pgx.Tx, accountID string, kind domain.WalletKind) (*domain.Wallet, error)

	// UpdateWalletBalanceInTx writes a new balance and updated timestamp within tx.
	UpdateWalletBalanceInTx(ctx context.Context, tx pgx.Tx, walletID string, balance decimal.Decimal, now time.Time) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletTransactionSupport
}

// WalletRepositoryWithTx extends WalletRepositoryFacade with transaction capabilities
type WalletRepositoryWithTx interface {
	WalletRepositoryFacade
	TransactionManager
}
