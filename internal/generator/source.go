package generator

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
