package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/core/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

// memStore is an in-memory ledger with row locks that behave like SELECT ... FOR UPDATE:
// a locked wallet stays locked until the owning transaction commits or rolls back,
// and balance writes only become visible on commit.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]bool
	wallets  map[string]*memWallet // accountID/kind
	tiers    map[string][]domain.ProfitTier
	txns     []domain.Transaction
	codes    map[string]bool
	lockLog  [][]domain.WalletKind
}

type memWallet struct {
	lock   chan struct{}
	wallet domain.Wallet
}

type memTx struct {
	pgx.Tx
	held     []*memWallet
	locked   []domain.WalletKind
	balances map[*memWallet]decimal.Decimal
	txns     []domain.Transaction
	done     bool
}

var (
	_ portsrepo.AccountReader               = (*memStore)(nil)
	_ portsrepo.WalletRepositoryWithTx      = (*memStore)(nil)
	_ portsrepo.ProfitTierRepository        = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]bool),
		wallets:  make(map[string]*memWallet),
		tiers:    make(map[string][]domain.ProfitTier),
		codes:    make(map[string]bool),
	}
}

func walletKey(accountID string, kind domain.WalletKind) string {
	return accountID + "/" + string(kind)
}

func (s *memStore) seedWallet(accountID string, kind domain.WalletKind, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[accountID] = true
	s.wallets[walletKey(accountID, kind)] = &memWallet{
		lock: make(chan struct{}, 1),
		wallet: domain.Wallet{
			WalletID:  fmt.Sprintf("w-%s-%s", accountID, kind),
			AccountID: accountID,
			Kind:      kind,
			Balance:   decimal.NewFromInt(balance),
		},
	}
}

func (s *memStore) balance(accountID string, kind domain.WalletKind) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallets[walletKey(accountID, kind)].wallet.Balance
}

func (s *memStore) transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Transaction(nil), s.txns...)
}

func (s *memStore) AccountExists(_ context.Context, accountID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[accountID], nil
}

func (s *memStore) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	if ok, _ := s.AccountExists(context.Background(), accountID); !ok {
		return nil, apperrors.ErrNotFound
	}
	return &domain.Account{AccountID: accountID}, nil
}

func (s *memStore) Begin(context.Context) (pgx.Tx, error) {
	return &memTx{balances: make(map[*memWallet]decimal.Decimal)}, nil
}

func (s *memStore) Commit(_ context.Context, tx pgx.Tx) error {
	mtx := tx.(*memTx)
	if mtx.done {
		return nil
	}
	s.mu.Lock()
	for w, balance := range mtx.balances {
		w.wallet.Balance = balance
	}
	for _, txn := range mtx.txns {
		s.txns = append(s.txns, txn)
		s.codes[txn.TransactionCode] = true
	}
	s.lockLog = append(s.lockLog, mtx.locked)
	s.mu.Unlock()
	s.release(mtx)
	return nil
}

func (s *memStore) Rollback(_ context.Context, tx pgx.Tx) error {
	mtx := tx.(*memTx)
	if mtx.done {
		return nil
	}
	s.release(mtx)
	return nil
}

func (s *memStore) release(mtx *memTx) {
	for _, w := range mtx.held {
		<-w.lock
	}
	mtx.held = nil
	mtx.done = true
}

func (s *memStore) FindWalletsByAccount(_ context.Context, accountID string) ([]domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Wallet
	for _, kind := range domain.WalletKinds {
		if w, ok := s.wallets[walletKey(accountID, kind)]; ok {
			out = append(out, w.wallet)
		}
	}
	return out, nil
}

func (s *memStore) FindWallet(_ context.Context, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[walletKey(accountID, kind)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	wallet := w.wallet
	return &wallet, nil
}

func (s *memStore) SaveWallet(_ context.Context, wallet domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := walletKey(wallet.AccountID, wallet.Kind)
	if _, ok := s.wallets[key]; ok {
		return apperrors.ErrDuplicate
	}
	s.wallets[key] = &memWallet{lock: make(chan struct{}, 1), wallet: wallet}
	return nil
}

func (s *memStore) EnsureWallet(ctx context.Context, accountID string, kind domain.WalletKind, now time.Time) (*domain.Wallet, error) {
	_ = s.SaveWallet(ctx, domain.Wallet{
		WalletID: fmt.Sprintf("w-%s-%s", accountID, kind), AccountID: accountID, Kind: kind,
		Balance: decimal.Zero, AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	return s.FindWallet(ctx, accountID, kind)
}

func (s *memStore) LockWalletInTx(ctx context.Context, tx pgx.Tx, accountID string, kind domain.WalletKind) (*domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	w, ok := s.wallets[walletKey(accountID, kind)]
	s.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	select {
	case w.lock <- struct{}{}:
	case <-ctx.Done():
		return nil, apperrors.NewConcurrencyError("lock wait timed out", ctx.Err())
	}

	mtx := tx.(*memTx)
	mtx.held = append(mtx.held, w)
	mtx.locked = append(mtx.locked, kind)

	s.mu.Lock()
	wallet := w.wallet
	s.mu.Unlock()
	return &wallet, nil
}

func (s *memStore) UpdateWalletBalanceInTx(_ context.Context, tx pgx.Tx, walletID string, balance decimal.Decimal, _ time.Time) error {
	mtx := tx.(*memTx)
	for _, w := range mtx.held {
		if w.wallet.WalletID == walletID {
			mtx.balances[w] = balance
			return nil
		}
	}
	return fmt.Errorf("wallet %s is not locked by this transaction", walletID)
}

func (s *memStore) ListTiers(_ context.Context, accountID string) ([]domain.ProfitTier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ProfitTier(nil), s.tiers[accountID]...), nil
}

func (s *memStore) ListTiersInTx(ctx context.Context, _ pgx.Tx, accountID string) ([]domain.ProfitTier, error) {
	return s.ListTiers(ctx, accountID)
}

func (s *memStore) ReplaceTiers(_ context.Context, accountID string, tiers []domain.ProfitTier, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiers[accountID] = append([]domain.ProfitTier(nil), tiers...)
	return nil
}

func (s *memStore) FindTransactionByID(_ context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range s.txns {
		if txn.AccountID == accountID && txn.TransactionID == transactionID {
			found := txn
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) ListTransactions(_ context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := &domain.TransactionPage{}
	for _, txn := range s.txns {
		if txn.AccountID == query.AccountID {
			page.Transactions = append(page.Transactions, txn)
		}
	}
	page.Total = len(page.Transactions)
	return page, nil
}

func (s *memStore) InsertTransactionInTx(_ context.Context, tx pgx.Tx, txn domain.Transaction) error {
	s.mu.Lock()
	taken := s.codes[txn.TransactionCode]
	s.mu.Unlock()
	mtx := tx.(*memTx)
	for _, staged := range mtx.txns {
		taken = taken || staged.TransactionCode == txn.TransactionCode
	}
	if taken {
		return apperrors.ErrTransactionCodeCollision
	}
	mtx.txns = append(mtx.txns, txn)
	return nil
}

func newEngineWithStore() (portssvc.TransferSvcFacade, *memStore) {
	store := newMemStore()
	return services.NewTransferService(store, store, store, store), store
}

func TestTransferEngine_EndToEndCashIn(t *testing.T) {
	engine, store := newEngineWithStore()
	store.seedWallet(testAccountID, domain.WalletCash, 1000)
	store.seedWallet(testAccountID, domain.WalletGCash, 1000)

	result, err := engine.CashIn(context.Background(), testAccountID, dto.CreateTransactionRequest{
		TransactionType: "CASH_IN",
		Amount:          decimalPtr("500"),
	})

	require.NoError(t, err)
	assert.True(t, store.balance(testAccountID, domain.WalletCash).Equal(decimal.NewFromInt(1500)))
	assert.True(t, store.balance(testAccountID, domain.WalletGCash).Equal(decimal.NewFromInt(500)))
	assert.True(t, result.ToBalance.Equal(decimal.NewFromInt(1500)))

	txns := store.transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, domain.CashIn, txns[0].TransactionType)
	assert.True(t, txns[0].Profit.IsZero())
	assert.Regexp(t, `^TXN-[0-9A-Z]{6}-[0-9A-Z]+$`, txns[0].TransactionCode)
}

func TestTransferEngine_ConservesMoneyInBothFeeModes(t *testing.T) {
	for _, separateFee := range []bool{false, true} {
		t.Run(fmt.Sprintf("separateFee=%t", separateFee), func(t *testing.T) {
			engine, store := newEngineWithStore()
			store.seedWallet(testAccountID, domain.WalletCash, 1000)
			store.seedWallet(testAccountID, domain.WalletGCash, 1000)
			require.NoError(t, store.ReplaceTiers(context.Background(), testAccountID, standardTiers(testAccountID), time.Now()))

			result, err := engine.CashOut(context.Background(), testAccountID, dto.CreateTransactionRequest{
				Amount:      decimalPtr("2500"),
				SeparateFee: separateFee,
			})
			require.Error(t, err, "2500 exceeds the CASH balance")
			assert.Nil(t, result)

			result, err = engine.CashOut(context.Background(), testAccountID, dto.CreateTransactionRequest{
				Amount:      decimalPtr("1000"),
				SeparateFee: separateFee,
			})
			require.NoError(t, err)

			profit := result.Transaction.Profit
			assert.True(t, profit.Equal(decimal.NewFromInt(15)))
			after := store.balance(testAccountID, domain.WalletCash).Add(store.balance(testAccountID, domain.WalletGCash))
			assert.True(t, after.Equal(decimal.NewFromInt(2000).Add(profit)), "before + profit == after, got %s", after)
			assert.False(t, store.balance(testAccountID, domain.WalletCash).IsNegative())
			assert.Equal(t, separateFee, result.Transaction.FeeSeparated)
		})
	}
}

func TestTransferEngine_InsufficientBalanceLeavesBalancesUnchanged(t *testing.T) {
	engine, store := newEngineWithStore()
	store.seedWallet(testAccountID, domain.WalletCash, 100)
	store.seedWallet(testAccountID, domain.WalletGCash, 50)

	_, err := engine.CashIn(context.Background(), testAccountID, dto.CreateTransactionRequest{Amount: decimalPtr("60")})

	require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.True(t, store.balance(testAccountID, domain.WalletCash).Equal(decimal.NewFromInt(100)))
	assert.True(t, store.balance(testAccountID, domain.WalletGCash).Equal(decimal.NewFromInt(50)))
	assert.Empty(t, store.transactions())

	// Locks were released: a valid transfer still goes through.
	_, err = engine.CashIn(context.Background(), testAccountID, dto.CreateTransactionRequest{Amount: decimalPtr("50")})
	require.NoError(t, err)
}

func TestTransferEngine_MissingWalletIsNotFound(t *testing.T) {
	engine, store := newEngineWithStore()
	store.seedWallet(testAccountID, domain.WalletCash, 100)

	_, err := engine.CashOut(context.Background(), testAccountID, dto.CreateTransactionRequest{Amount: decimalPtr("10")})

	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "GCASH")
	assert.True(t, store.balance(testAccountID, domain.WalletCash).Equal(decimal.NewFromInt(100)))
	assert.Empty(t, store.transactions())
}

func TestTransferEngine_CancelledContextRollsBack(t *testing.T) {
	engine, store := newEngineWithStore()
	store.seedWallet(testAccountID, domain.WalletCash, 100)
	store.seedWallet(testAccountID, domain.WalletGCash, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Transfer(ctx, domain.TransferRequest{
		AccountID: testAccountID, TransactionType: domain.CashIn, Amount: decimal.NewFromInt(10),
		From: domain.WalletGCash, To: domain.WalletCash,
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, store.balance(testAccountID, domain.WalletGCash).Equal(decimal.NewFromInt(100)))
	assert.Empty(t, store.transactions())
}

func TestTransferEngine_ConcurrentOppositeTransfersComplete(t *testing.T) {
	engine, store := newEngineWithStore()
	store.seedWallet(testAccountID, domain.WalletCash, 1_000_000)
	store.seedWallet(testAccountID, domain.WalletGCash, 1_000_000)
	require.NoError(t, store.ReplaceTiers(context.Background(), testAccountID, standardTiers(testAccountID), time.Now()))

	// A lock wait longer than this would mean the two directions deadlocked.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const workers = 40
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := dto.CreateTransactionRequest{Amount: decimalPtr("100"), SeparateFee: i%4 == 1}
			var err error
			if i%2 == 0 {
				_, err = engine.CashIn(ctx, testAccountID, req)
			} else {
				_, err = engine.CashOut(ctx, testAccountID, req)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	txns := store.transactions()
	require.Len(t, txns, workers)

	totalProfit := decimal.Zero
	codes := make(map[string]bool, workers)
	for _, txn := range txns {
		totalProfit = totalProfit.Add(txn.Profit)
		codes[txn.TransactionCode] = true
	}
	assert.Len(t, codes, workers, "transaction codes must be unique")
	assert.True(t, totalProfit.Equal(decimal.NewFromInt(10*workers)))

	total := store.balance(testAccountID, domain.WalletCash).Add(store.balance(testAccountID, domain.WalletGCash))
	assert.True(t, total.Equal(decimal.NewFromInt(2_000_000).Add(totalProfit)))

	store.mu.Lock()
	defer store.mu.Unlock()
	for _, order := range store.lockLog {
		assert.True(t, sort.SliceIsSorted(order, func(i, j int) bool { return order[i] < order[j] }),
			"wallets locked out of order: %v", order)
		assert.Equal(t, []domain.WalletKind{domain.WalletCash, domain.WalletGCash}, order)
	}
}
