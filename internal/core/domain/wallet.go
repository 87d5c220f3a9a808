package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WalletKind names one of the two wallets every account holds.
type WalletKind string

const (
	// WalletCash is the physical cash drawer.
	WalletCash WalletKind = "CASH"
	// WalletGCash is the digital e-wallet.
	WalletGCash WalletKind = "GCASH"
)

// WalletKinds lists every wallet kind in lock order.
var WalletKinds = []WalletKind{WalletCash, WalletGCash}

// IsValid reports whether k is a known wallet kind.
func (k WalletKind) IsValid() bool {
	return k == WalletCash || k == WalletGCash
}

// ParseWalletKind accepts any casing ("cash", "Gcash", ...).
func ParseWalletKind(s string) (WalletKind, error) {
	k := WalletKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown wallet kind %q", s)
	}
	return k, nil
}

// LockOrder returns the two kinds in the order their rows must be locked.
// The order is fixed (alphabetical) no matter which one is the source.
func LockOrder(a, b WalletKind) (WalletKind, WalletKind) {
	if a > b {
		return b, a
	}
	return a, b
}

// Wallet is a balance holder owned by an account. Balance is never negative
// after a committed transfer.
type Wallet struct {
	WalletID  string          `json:"walletID"`
	AccountID string          `json:"accountID"`
	Kind      WalletKind      `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}

// Balances is the read-side view of both wallets of an account.
type Balances struct {
	Cash  decimal.Decimal `json:"cash"`
	GCash decimal.Decimal `json:"gcash"`
}
