package handlers_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

func (m *MockTransferService) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockTransferService) CashIn(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockTransferService) CashOut(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.TransferResult, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockTransferService) GetTransaction(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransferService) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

func (m *MockWalletService) ListWallets(ctx context.Context, accountID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetBalances(ctx context.Context, accountID string) (*domain.Balances, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balances), args.Error(1)
}

func (m *MockWalletService) CreateWallet(ctx context.Context, accountID string, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) AdjustBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

// --- Mock ProfitService ---
type MockProfitService struct {
	mock.Mock
}

var _ portssvc.ProfitSvcFacade = (*MockProfitService)(nil)

func (m *MockProfitService) SaveTiers(ctx context.Context, accountID string, req dto.SaveProfitTiersRequest) ([]domain.ProfitTier, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitTier), args.Error(1)
}

func (m *MockProfitService) GetTiers(ctx context.Context, accountID string) ([]domain.ProfitTier, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitTier), args.Error(1)
}

func (m *MockProfitService) ComputeProfit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) ProfitSummary(ctx context.Context, accountID string) (*domain.ProfitSummary, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitSummary), args.Error(1)
}

func (m *MockReportingService) DailyProfit(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyProfit, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyProfit), args.Error(1)
}
