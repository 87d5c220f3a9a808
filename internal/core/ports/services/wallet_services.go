package services

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

// WalletReaderSvc defines read paths. Missing wallets are provisioned with a zero balance.
type WalletReaderSvc interface {
	ListWallets(ctx context.Context, accountID string) ([]domain.Wallet, error)
	GetWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error)
	GetBalances(ctx context.Context, accountID string) (*domain.Balances, error)
}

// WalletWriterSvc defines explicit wallet management outside of transfers.
type WalletWriterSvc interface {
	// CreateWallet creates a wallet with an opening balance.
	CreateWallet(ctx context.Context, accountID string, req dto.CreateWalletRequest) (*domain.Wallet, error)

	// AdjustBalance overwrites a wallet balance under the row lock.
	AdjustBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
