package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository. lockTimeout bounds wallet
// row lock waits; the tier cache is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		WalletRepo:      newPgxWalletRepository(dbPool, lockTimeout),
		ProfitTierRepo:  newPgxProfitTierRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
