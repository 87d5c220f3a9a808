package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

// walletService manages wallets outside of transfers.
type walletService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	walletRepo  portsrepo.WalletRepositoryWithTx
}

// NewWalletService creates a new wallet service.
func NewWalletService(accountRepo portsrepo.AccountReader, walletRepo portsrepo.WalletRepositoryWithTx) portssvc.WalletSvcFacade {
	return &walletService{
		accountRepo: accountRepo,
		walletRepo:  walletRepo,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) requireAccount(ctx context.Context, accountID string) error {
	exists, err := s.accountRepo.AccountExists(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account", slog.String("account_id", accountID))
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

// ListWallets returns both wallets of the account, creating missing ones with a zero balance.
func (s *walletService) ListWallets(ctx context.Context, accountID string) ([]domain.Wallet, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	now := s.Now()
	wallets := make([]domain.Wallet, 0, len(domain.WalletKinds))
	for _, kind := range domain.WalletKinds {
		wallet, err := s.walletRepo.EnsureWallet(ctx, accountID, kind, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to provision wallet",
				slog.String("account_id", accountID), slog.String("wallet", string(kind)))
			return nil, err
		}
		wallets = append(wallets, *wallet)
	}
	return wallets, nil
}

// GetWallet returns one wallet of the account, creating it with a zero balance if needed.
func (s *walletService) GetWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown wallet kind %q", kind)
	}
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.walletRepo.EnsureWallet(ctx, accountID, kind, s.Now())
}

// GetBalances returns the balances of both wallets.
func (s *walletService) GetBalances(ctx context.Context, accountID string) (*domain.Balances, error) {
	wallets, err := s.ListWallets(ctx, accountID)
	if err != nil {
		return nil, err
	}

	balances := &domain.Balances{Cash: decimal.Zero, GCash: decimal.Zero}
	for _, w := range wallets {
		switch w.Kind {
		case domain.WalletCash:
			balances.Cash = w.Balance
		case domain.WalletGCash:
			balances.GCash = w.Balance
		}
	}
	return balances, nil
}

// CreateWallet opens a wallet with an optional non-negative opening balance.
func (s *walletService) CreateWallet(ctx context.Context, accountID string, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	kind, err := domain.ParseWalletKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	balance := decimal.Zero
	if req.OpeningBalance != nil {
		balance = *req.OpeningBalance
	}
	if balance.IsNegative() {
		return nil, apperrors.NewValidationError("opening balance cannot be negative")
	}
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	now := s.Now()
	wallet := domain.Wallet{
		WalletID:    uuid.NewString(),
		AccountID:   accountID,
		Kind:        kind,
		Balance:     balance,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s wallet already exists", apperrors.ErrDuplicate, kind)
		}
		s.LogError(ctx, err, "Failed to create wallet",
			slog.String("account_id", accountID), slog.String("wallet", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("wallet", string(kind)),
		slog.String("balance", balance.String()))
	return &wallet, nil
}

// AdjustBalance sets a wallet to an absolute balance while holding its row lock.
func (s *walletService) AdjustBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*domain.Wallet, error) {
	kind, err := domain.ParseWalletKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if req.Balance == nil {
		return nil, apperrors.NewValidationError("balance is required")
	}
	if req.Balance.IsNegative() {
		return nil, apperrors.NewValidationError("balance cannot be negative")
	}
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	now := s.Now()
	if _, err := s.walletRepo.EnsureWallet(ctx, accountID, kind, now); err != nil {
		return nil, err
	}

	tx, err := s.walletRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.walletRepo.Rollback(context.WithoutCancel(ctx), tx)
	}()

	wallet, err := s.walletRepo.LockWalletInTx(ctx, tx, accountID, kind)
	if err != nil {
		return nil, err
	}
	previous := wallet.Balance
	if err := s.walletRepo.UpdateWalletBalanceInTx(ctx, tx, wallet.WalletID, *req.Balance, now); err != nil {
		s.LogError(ctx, err, "Failed to adjust wallet balance", slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}
	if err := s.walletRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit wallet adjustment", slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}

	wallet.Balance = *req.Balance
	wallet.UpdatedAt = now
	s.LogInfo(ctx, "Wallet balance adjusted",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("wallet", string(kind)),
		slog.String("previous_balance", previous.String()),
		slog.String("balance", wallet.Balance.String()))
	return wallet, nil
}
