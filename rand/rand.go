// Package rand defines the randomness-injection capability the core calls
// into. The core never reaches for a global RNG; every routine that needs
// entropy accepts a Source explicitly, so tests can inject deterministic
// sequences and callers control randomness quality.
package rand

import (
	"crypto/rand"
	"math/big"
)

// Source produces the two shapes of randomness the toolkit needs: raw
// bytes, and a uniform integer within an inclusive range.
type Source interface {
	// RandBytes returns n cryptographically-unrelated bytes.
	RandBytes(n int) ([]byte, error)

	// RandIntIn returns a uniform integer in [lo, hi].
	RandIntIn(lo, hi *big.Int) (*big.Int, error)
}

// CryptoSource is the default Source, backed by crypto/rand. Quality of
// the underlying entropy is the caller's responsibility; this toolkit does
// not audit it (see Non-goals: production-grade randomness).
type CryptoSource struct{}

// New returns the default crypto/rand-backed Source.
func New() Source {
	return CryptoSource{}
}

func (CryptoSource) RandBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (CryptoSource) RandIntIn(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}
