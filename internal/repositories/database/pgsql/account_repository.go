package pgsql

import (
	"context"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_wallet_app/internal/models"
	"github.com/SscSPs/cash_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account lookups.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// AccountExists reports whether the account row exists.
func (r *PgxAccountRepository) AccountExists(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1);`, accountID).Scan(&exists)
	if err != nil {
		return false, translateError(err, "failed to check account "+accountID)
	}
	return exists, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, username, created_at, updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.AccountID, &m.Username, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "account "+accountID+" not found")
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
