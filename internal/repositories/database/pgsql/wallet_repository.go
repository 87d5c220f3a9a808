package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_wallet_app/internal/models"
	"github.com/SscSPs/cash_wallet_app/internal/utils/mapping"
)

const walletColumns = `wallet_id, account_id, kind, balance, created_at, updated_at`

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a wallet repository whose transactions wait at most
// lockTimeout for a row lock.
func newPgxWalletRepository(pool *pgxpool.Pool, lockTimeout time.Duration) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeout: lockTimeout}}
}

var _ portsrepo.WalletRepositoryWithTx = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(&w.WalletID, &w.AccountID, &w.Kind, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

// FindWalletsByAccount lists the wallets of an account ordered by kind.
func (r *PgxWalletRepository) FindWalletsByAccount(ctx context.Context, accountID string) ([]domain.Wallet, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+walletColumns+` FROM wallets WHERE account_id = $1 ORDER BY kind;`, accountID)
	if err != nil {
		return nil, translateError(err, "failed to query wallets")
	}
	defer rows.Close()

	modelWallets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Wallet, error) {
		return scanWallet(row)
	})
	if err != nil {
		return nil, translateError(err, "failed to scan wallets")
	}
	return mapping.ToDomainWalletSlice(modelWallets), nil
}

// FindWallet retrieves one wallet without locking it.
func (r *PgxWalletRepository) FindWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE account_id = $1 AND kind = $2;`, accountID, string(kind))
	m, err := scanWallet(row)
	if err != nil {
		return nil, translateError(err, "wallet "+string(kind)+" not found")
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// SaveWallet inserts a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (wallet_id, account_id, kind, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.WalletID, m.AccountID, m.Kind, m.Balance, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return translateError(err, "failed to save "+m.Kind+" wallet")
	}
	return nil
}

// EnsureWallet creates the wallet with a zero balance unless it exists, then reads it.
// Concurrent callers race on the (account_id, kind) constraint and all read the winner.
func (r *PgxWalletRepository) EnsureWallet(ctx context.Context, accountID string, kind domain.WalletKind, now time.Time) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (wallet_id, account_id, kind, balance, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $4)
		ON CONFLICT (account_id, kind) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, uuid.NewString(), accountID, string(kind), now); err != nil {
		return nil, translateError(err, "failed to provision "+string(kind)+" wallet")
	}
	return r.FindWallet(ctx, accountID, kind)
}

// LockWalletInTx selects the wallet row FOR UPDATE. The lock is held until tx ends.
func (r *PgxWalletRepository) LockWalletInTx(ctx context.Context, tx pgx.Tx, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE account_id = $1 AND kind = $2 FOR UPDATE;`
	m, err := scanWallet(tx.QueryRow(ctx, query, accountID, string(kind)))
	if err != nil {
		return nil, translateError(err, "failed to lock "+string(kind)+" wallet")
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// UpdateWalletBalanceInTx overwrites the balance of a wallet locked by tx.
func (r *PgxWalletRepository) UpdateWalletBalanceInTx(ctx context.Context, tx pgx.Tx, walletID string, balance decimal.Decimal, now time.Time) error {
	ct, err := tx.Exec(ctx, `UPDATE wallets SET balance = $2, updated_at = $3 WHERE wallet_id = $1;`, walletID, balance, now)
	if err != nil {
		return translateError(err, "failed to update balance of wallet "+walletID)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("wallet " + walletID)
	}
	return nil
}
