package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/SscSPs/cash_wallet_app/internal/utils/accounting"
)

// TransferStage is the last step a transfer reached. It is attached to failure logs.
type TransferStage string

const (
	StageStarted             TransferStage = "STARTED"
	StageWalletsLocked       TransferStage = "WALLETS_LOCKED"
	StageProfitComputed      TransferStage = "PROFIT_COMPUTED"
	StageBalancesUpdated     TransferStage = "BALANCES_UPDATED"
	StageTransactionRecorded TransferStage = "TRANSACTION_RECORDED"
	StageCommitted           TransferStage = "COMMITTED"
	StageAborted             TransferStage = "ABORTED"
)

// maxCodeAttempts is the number of transaction codes tried before giving up.
const maxCodeAttempts = 2

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// transferService is the ledger transfer engine plus the transaction log reads.
type transferService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	walletRepo  portsrepo.WalletRepositoryWithTx
	tierRepo    portsrepo.ProfitTierRepository
	txnRepo     portsrepo.TransactionRepositoryFacade
	newCode     TransactionCodeGenerator
}

// TransferServiceOption is a functional option for configuring the transfer service
type TransferServiceOption func(*transferService)

// WithTransactionCodeGenerator replaces the transaction code generator.
func WithTransactionCodeGenerator(gen TransactionCodeGenerator) TransferServiceOption {
	return func(s *transferService) {
		s.newCode = gen
	}
}

// WithTransferClock sets the clock used for timestamps and the future-date check.
func WithTransferClock(clock func() time.Time) TransferServiceOption {
	return func(s *transferService) {
		s.Clock = clock
	}
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	accountRepo portsrepo.AccountReader,
	walletRepo portsrepo.WalletRepositoryWithTx,
	tierRepo portsrepo.ProfitTierRepository,
	txnRepo portsrepo.TransactionRepositoryFacade,
	options ...TransferServiceOption,
) portssvc.TransferSvcFacade {
	svc := &transferService{
		accountRepo: accountRepo,
		walletRepo:  walletRepo,
		tierRepo:    tierRepo,
		txnRepo:     txnRepo,
		newCode:     NewTransactionCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// Transfer runs one transfer as a single database transaction. Wallets are locked in
// domain.LockOrder, so two transfers of the same account never wait on each other
// in opposite orders.
func (s *transferService) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("account_id", req.AccountID),
		slog.String("transaction_type", string(req.TransactionType)),
		slog.String("from_wallet", string(req.From)),
		slog.String("to_wallet", string(req.To)),
		slog.String("amount", req.Amount.String()),
	)

	now := s.Now()
	if req.TransactionDate.IsZero() {
		req.TransactionDate = now
	}
	if err := req.Validate(now); err != nil {
		logger.Warn("Transfer rejected", slog.String("error", err.Error()))
		return nil, err
	}

	stage := StageStarted
	tx, err := s.walletRepo.Begin(ctx)
	if err != nil {
		return nil, s.abort(logger, stage, err)
	}
	// No-op once committed. Runs even if ctx is already cancelled.
	defer func() {
		_ = s.walletRepo.Rollback(context.WithoutCancel(ctx), tx)
	}()

	first, second := domain.LockOrder(req.From, req.To)
	locked := make(map[domain.WalletKind]*domain.Wallet, 2)
	for _, kind := range []domain.WalletKind{first, second} {
		wallet, err := s.walletRepo.LockWalletInTx(ctx, tx, req.AccountID, kind)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				err = apperrors.NewNotFoundError(fmt.Sprintf("wallet %s not found", kind))
			}
			return nil, s.abort(logger, stage, err, slog.String("wallet", string(kind)))
		}
		locked[kind] = wallet
	}
	stage = StageWalletsLocked
	from, to := locked[req.From], locked[req.To]

	tiers, err := s.tierRepo.ListTiersInTx(ctx, tx, req.AccountID)
	if err != nil {
		return nil, s.abort(logger, stage, err)
	}
	profit, err := accounting.CalculateProfit(req.Amount, tiers)
	if err != nil {
		return nil, s.abort(logger, stage, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
	}
	stage = StageProfitComputed

	if from.Balance.LessThan(req.Amount) {
		return nil, s.abort(logger, stage, &apperrors.InsufficientBalanceError{
			WalletKind: string(from.Kind),
			Balance:    from.Balance,
			Requested:  req.Amount,
		}, slog.String("balance", from.Balance.String()))
	}

	separateFee := req.TransactionType == domain.CashOut && req.Metadata.SeparateFee
	newFrom, newTo := accounting.TransferBalances(req.TransactionType, separateFee, from.Balance, to.Balance, req.Amount, profit)
	if err := s.walletRepo.UpdateWalletBalanceInTx(ctx, tx, from.WalletID, newFrom, now); err != nil {
		return nil, s.abort(logger, stage, err, slog.String("wallet", string(from.Kind)))
	}
	if err := s.walletRepo.UpdateWalletBalanceInTx(ctx, tx, to.WalletID, newTo, now); err != nil {
		return nil, s.abort(logger, stage, err, slog.String("wallet", string(to.Kind)))
	}
	stage = StageBalancesUpdated

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.AccountID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Profit:          profit,
		FeeSeparated:    separateFee,
		TransactionDate: req.TransactionDate,
		ReferenceNumber: req.Metadata.ReferenceNumber,
		CustomerName:    req.Metadata.CustomerName,
		CustomerPhone:   req.Metadata.CustomerPhone,
		Description:     req.Metadata.Description,
		CreatedAt:       now,
	}
	if err := s.recordTransaction(ctx, logger, tx, &txn, now); err != nil {
		return nil, s.abort(logger, stage, err)
	}
	stage = StageTransactionRecorded

	if err := ctx.Err(); err != nil {
		return nil, s.abort(logger, stage, err)
	}
	if err := s.walletRepo.Commit(ctx, tx); err != nil {
		return nil, s.abort(logger, stage, err)
	}

	logger.Info("Transfer committed",
		slog.String("stage", string(StageCommitted)),
		slog.String("transaction_code", txn.TransactionCode),
		slog.String("profit", profit.String()))

	return &domain.TransferResult{
		From:            req.From,
		To:              req.To,
		FromBalance:     newFrom,
		ToBalance:       newTo,
		TransactionType: req.TransactionType,
		Transaction:     txn,
	}, nil
}

// recordTransaction inserts txn with a fresh code, retrying once on a code collision.
func (s *transferService) recordTransaction(ctx context.Context, logger *slog.Logger, tx pgx.Tx, txn *domain.Transaction, now time.Time) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.newCode(now)
		if err != nil {
			return err
		}
		txn.TransactionCode = code

		err = s.txnRepo.InsertTransactionInTx(ctx, tx, *txn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrTransactionCodeCollision) {
			return err
		}
		logger.Warn("Transaction code collision", slog.String("transaction_code", code), slog.Int("attempt", attempt))
	}
	return apperrors.NewConcurrencyError("could not allocate a unique transaction code", apperrors.ErrTransactionCodeCollision)
}

// abort logs a failed transfer with the stage it reached and returns err. Business
// rejections log at warn level, everything else at error level.
func (s *transferService) abort(logger *slog.Logger, stage TransferStage, err error, attrs ...any) error {
	args := make([]any, 0, len(attrs)+3)
	args = append(args,
		slog.String("stage", string(stage)),
		slog.String("outcome", string(StageAborted)),
		slog.String("error", err.Error()))
	args = append(args, attrs...)

	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, apperrors.ErrConcurrency),
		errors.Is(err, context.Canceled):
		logger.Warn("Transfer aborted", args...)
	default:
		logger.Error("Transfer aborted", args...)
	}
	return err
}

// CashIn moves money from the GCASH wallet into the CASH wallet.
func (s *transferService) CashIn(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error) {
	return s.cashTransfer(ctx, accountID, domain.CashIn, req)
}

// CashOut moves money from the CASH wallet into the GCASH wallet.
func (s *transferService) CashOut(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error) {
	return s.cashTransfer(ctx, accountID, domain.CashOut, req)
}

func (s *transferService) cashTransfer(ctx context.Context, accountID string, txnType domain.TransactionType, req dto.CreateTransactionRequest) (*domain.TransferResult, error) {
	exists, err := s.accountRepo.AccountExists(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account", slog.String("account_id", accountID))
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("account not found")
	}

	from, to := txnType.Wallets()
	var transactionDate time.Time
	if req.TransactionDate != nil {
		transactionDate = req.TransactionDate.UTC()
	}

	return s.Transfer(ctx, domain.TransferRequest{
		AccountID:       accountID,
		TransactionType: txnType,
		Amount:          req.ClampedAmount(),
		From:            from,
		To:              to,
		TransactionDate: transactionDate,
		Metadata:        req.Metadata(),
	})
}

// GetTransaction retrieves one transaction of the account.
func (s *transferService) GetTransaction(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, apperrors.NewValidationError("invalid transaction ID %q", transactionID)
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, accountID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions normalizes paging (page >= 1, page size 1..50, default 10) and
// returns one page of the account's transactions.
func (s *transferService) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	query, err := buildTransactionQuery(accountID, params)
	if err != nil {
		return nil, err
	}

	page, err := s.txnRepo.ListTransactions(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, err
	}

	pageNumber := query.Offset/query.Limit + 1
	return &dto.ListTransactionsResponse{
		Data:       dto.ToTransactionResponses(page.Transactions),
		Page:       pageNumber,
		PageSize:   query.Limit,
		Total:      page.Total,
		TotalPages: int(math.Ceil(float64(page.Total) / float64(query.Limit))),
	}, nil
}

func buildTransactionQuery(accountID string, params dto.ListTransactionsParams) (domain.TransactionQuery, error) {
	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	query := domain.TransactionQuery{
		AccountID: accountID,
		Search:    strings.TrimSpace(params.Search),
		SortBy:    domain.SortByTransactionDate,
		Direction: domain.SortDesc,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}

	if t := strings.ToUpper(strings.TrimSpace(params.Type)); t != "" && t != "ALL" {
		txnType := domain.TransactionType(t)
		if !txnType.IsValid() {
			return query, apperrors.NewValidationError("unknown transaction type filter %q", params.Type)
		}
		query.Type = &txnType
	}

	if params.OrderBy != "" {
		sortBy := domain.TransactionSortField(params.OrderBy)
		if !sortBy.IsValid() {
			return query, apperrors.NewValidationError("cannot order by %q", params.OrderBy)
		}
		query.SortBy = sortBy
	}

	if params.OrderDirection != "" {
		direction := domain.SortDirection(strings.ToUpper(params.OrderDirection))
		if direction != domain.SortAsc && direction != domain.SortDesc {
			return query, apperrors.NewValidationError("order direction must be ASC or DESC")
		}
		query.Direction = direction
	}

	return query, nil
}
