package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
)

// stubTx stands in for a pgx.Tx that the mocked repositories never dereference.
type stubTx struct {
	pgx.Tx
	name string
}

// --- Mock AccountReader ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) AccountExists(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock WalletRepositoryWithTx ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryWithTx = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockWalletRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWalletRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletsByAccount(ctx context.Context, accountID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) EnsureWallet(ctx context.Context, accountID string, kind domain.WalletKind, now time.Time) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, kind, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) LockWalletInTx(ctx context.Context, tx pgx.Tx, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	args := m.Called(ctx, tx, accountID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the engine cannot mutate the fixture.
	w := *args.Get(0).(*domain.Wallet)
	return &w, args.Error(1)
}

func (m *MockWalletRepository) UpdateWalletBalanceInTx(ctx context.Context, tx pgx.Tx, walletID string, balance decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, walletID, balance, now)
	return args.Error(0)
}

// --- Mock ProfitTierRepository ---
type MockProfitTierRepository struct {
	mock.Mock
}

var _ portsrepo.ProfitTierRepository = (*MockProfitTierRepository)(nil)

func (m *MockProfitTierRepository) ListTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitTier), args.Error(1)
}

func (m *MockProfitTierRepository) ListTiersInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.ProfitTier, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitTier), args.Error(1)
}

func (m *MockProfitTierRepository) ReplaceTiers(ctx context.Context, accountID string, tiers []domain.ProfitTier, now time.Time) error {
	args := m.Called(ctx, accountID, tiers, now)
	return args.Error(0)
}

// --- Mock ProfitTierCache ---
type MockTierCache struct {
	mock.Mock
}

var _ portsrepo.ProfitTierCache = (*MockTierCache)(nil)

func (m *MockTierCache) Get(ctx context.Context, accountID string) ([]domain.ProfitTier, string, bool) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Bool(2)
	}
	return args.Get(0).([]domain.ProfitTier), args.String(1), args.Bool(2)
}

func (m *MockTierCache) Set(ctx context.Context, accountID, generation string, tiers []domain.ProfitTier) {
	m.Called(ctx, accountID, generation, tiers)
}

func (m *MockTierCache) Invalidate(ctx context.Context, accountID string) {
	m.Called(ctx, accountID)
}

// --- Mock TransactionRepositoryFacade ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitSummary), args.Error(1)
}

func (m *MockReportingRepository) GetDailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyProfit), args.Error(1)
}

func standardTiers(accountID string) []domain.ProfitTier {
	return []domain.ProfitTier{
		{TierID: "t1", AccountID: accountID, MinAmount: decimal.NewFromInt(1), MaxAmount: decimal.NewFromInt(45), Fee: decimal.NewFromInt(5)},
		{TierID: "t2", AccountID: accountID, MinAmount: decimal.NewFromInt(46), MaxAmount: decimal.NewFromInt(250), Fee: decimal.NewFromInt(10)},
		{TierID: "t3", AccountID: accountID, MinAmount: decimal.NewFromInt(251), MaxAmount: decimal.NewFromInt(1000), Fee: decimal.NewFromInt(15)},
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
