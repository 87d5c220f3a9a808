package utils_test

import (
	"regexp"
	"testing"

	"github.com/SscSPs/cash_wallet_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomBase36(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{6}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := utils.GenerateRandomBase36(6)
		require.NoError(t, err)
		assert.Regexp(t, pattern, s)
		seen[s] = struct{}{}
	}
	// 36^6 possibilities; 100 draws colliding down to a handful would mean a broken source.
	assert.Greater(t, len(seen), 90)

	_, err := utils.GenerateRandomBase36(0)
	assert.Error(t, err)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "3.33", utils.RoundMoney(decimal.NewFromInt(10).Div(decimal.NewFromInt(3))).String())
	assert.Equal(t, "15", utils.RoundMoney(decimal.NewFromInt(15)).String())
}
