package accounting

import (
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferBalances computes the balances of the source and destination wallets after a
// transfer of amount carrying profit.
//
// CASH_IN, and CASH_OUT without a separated fee: the destination absorbs the profit.
// CASH_OUT with a separated fee: the source is credited the profit and the destination
// receives only the amount.
func TransferBalances(txnType domain.TransactionType, separateFee bool, fromBalance, toBalance, amount, profit decimal.Decimal) (newFrom, newTo decimal.Decimal) {
	if txnType == domain.CashOut && separateFee {
		return fromBalance.Sub(amount).Add(profit), toBalance.Add(amount)
	}
	return fromBalance.Sub(amount), toBalance.Add(amount).Add(profit)
}
