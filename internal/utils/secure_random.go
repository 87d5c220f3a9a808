package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateRandomBase36 returns length characters drawn uniformly from [0-9A-Z]
// using crypto/rand.
func GenerateRandomBase36(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	limit := big.NewInt(int64(len(base36Alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = base36Alphabet[n.Int64()]
	}
	return string(out), nil
}
