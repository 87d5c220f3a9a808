package utils

import "github.com/shopspring/decimal"

// MoneyDisplayPlaces is the number of decimal places shown for derived peso amounts.
const MoneyDisplayPlaces int32 = 2

// RoundMoney rounds a derived amount (averages, ratios) for display.
// Stored balances and fees are never rounded.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyDisplayPlaces)
}
