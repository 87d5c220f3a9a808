package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/utils"
)

// TransactionCodeGenerator returns a new human-readable transaction code.
type TransactionCodeGenerator func(now time.Time) (string, error)

const transactionCodeRandomLength = 6

// NewTransactionCode formats TXN-<6 random base36>-<base36 unix millis>, upper case.
func NewTransactionCode(now time.Time) (string, error) {
	random, err := utils.GenerateRandomBase36(transactionCodeRandomLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction code: %w", err)
	}
	millis := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "TXN-" + random + "-" + millis, nil
}
