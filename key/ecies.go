package key

import (
	"math/big"

	"github.com/johndoe31415/ecctoolkit/curve"
	"github.com/johndoe31415/ecctoolkit/rand"
)

// ECIESCiphertext is the (R, S) pair spec.md §4.5 defines: R is public,
// S is the shared point a caller feeds into their own KDF.
type ECIESCiphertext struct {
	R *curve.Point
	S *curve.Point
}

// Encrypt samples r uniformly in [1, n-1] and returns (R=[r]G, S=[r]Q),
// grounded on ECKeypair.encrypt / PrivKeyOps.PrivKeyOpECIESDecrypt's
// counterpart. spec.md §9 flags the historical r ∈ [0, 100000) range as a
// source bug; this draws from the full [1, n-1] range instead.
func (pub *PublicKey) Encrypt(src rand.Source) (*ECIESCiphertext, error) {
	c := pub.curve
	one := big.NewInt(1)
	r, err := src.RandIntIn(one, new(big.Int).Sub(c.N(), one))
	if err != nil {
		return nil, err
	}
	R, err := c.G().Mul(r)
	if err != nil {
		return nil, err
	}
	S, err := pub.point.Mul(r)
	if err != nil {
		return nil, err
	}
	return &ECIESCiphertext{R: R, S: S}, nil
}

// Decrypt recovers the shared point S = [d]R, grounded on
// PrivKeyOps.PrivKeyOpECIESDecrypt.
func (priv *PrivateKey) Decrypt(R *curve.Point) (*curve.Point, error) {
	return R.Mul(priv.scalar)
}
