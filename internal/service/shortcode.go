package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const shortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateShortCode returns a random short code of length n, sampled
// uniformly from [A-Za-z0-9] with a cryptographically secure source.
func GenerateShortCode(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(shortCodeAlphabet)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random short code: %w", err)
		}
		out[i] = shortCodeAlphabet[num.Int64()]
	}
	return string(out), nil
}
