package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_wallet_app/internal/models"
	"github.com/SscSPs/cash_wallet_app/internal/utils/mapping"
)

// transactionCodeConstraint is the unique constraint on transactions.transaction_code.
const transactionCodeConstraint = "transactions_transaction_code_key"

const transactionColumns = `transaction_id, account_id, transaction_type, amount, profit, fee_separated,
	transaction_code, transaction_date, reference_number, customer_name, customer_phone, description, created_at`

// sortColumns maps the closed set of sort fields onto SQL columns.
var sortColumns = map[domain.TransactionSortField]string{
	domain.SortByTransactionDate: "transaction_date",
	domain.SortByAmount:          "amount",
	domain.SortByProfit:          "profit",
	domain.SortByCreatedAt:       "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.AccountID,
		&t.TransactionType,
		&t.Amount,
		&t.Profit,
		&t.FeeSeparated,
		&t.TransactionCode,
		&t.TransactionDate,
		&t.ReferenceNumber,
		&t.CustomerName,
		&t.CustomerPhone,
		&t.Description,
		&t.CreatedAt,
	)
	return t, err
}

// InsertTransactionInTx inserts the row inside a savepoint so that a code collision
// leaves the surrounding transaction usable for a retry.
func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	savepoint, err := tx.Begin(ctx)
	if err != nil {
		return translateError(err, "failed to create savepoint")
	}

	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err = savepoint.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.TransactionType,
		m.Amount,
		m.Profit,
		m.FeeSeparated,
		m.TransactionCode,
		m.TransactionDate,
		m.ReferenceNumber,
		m.CustomerName,
		m.CustomerPhone,
		m.Description,
		m.CreatedAt,
	)
	if err != nil {
		_ = savepoint.Rollback(ctx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == transactionCodeConstraint {
			return fmt.Errorf("%w: %s", apperrors.ErrTransactionCodeCollision, m.TransactionCode)
		}
		return translateError(err, "failed to insert transaction")
	}

	if err := savepoint.Commit(ctx); err != nil {
		return translateError(err, "failed to release savepoint")
	}
	return nil
}

// FindTransactionByID retrieves one transaction of the account.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 AND transaction_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, accountID, transactionID))
	if err != nil {
		return nil, translateError(err, "transaction "+transactionID+" not found")
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// buildListFilter returns the WHERE clause and its arguments for query.
func buildListFilter(query domain.TransactionQuery) (string, []any) {
	conditions := []string{"account_id = $1"}
	args := []any{query.AccountID}

	if query.Type != nil {
		args = append(args, string(*query.Type))
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", len(args)))
	}
	if query.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(query.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(customer_name ILIKE $%d OR reference_number ILIKE $%d OR customer_phone ILIKE $%d)", n, n, n))
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListTransactions returns one page of the account's transactions plus the total count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error) {
	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = sortColumns[domain.SortByTransactionDate]
	}
	direction := "DESC"
	if query.Direction == domain.SortAsc {
		direction = "ASC"
	}

	where, args := buildListFilter(query)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, translateError(err, "failed to count transactions")
	}

	args = append(args, query.Limit, query.Offset)
	listQuery := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY %s %s, transaction_id %s LIMIT $%d OFFSET $%d;`,
		transactionColumns, where, column, direction, direction, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, translateError(err, "failed to query transactions")
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, translateError(err, "failed to scan transactions")
	}

	return &domain.TransactionPage{
		Transactions: mapping.ToDomainTransactionSlice(modelTxns),
		Total:        total,
	}, nil
}
