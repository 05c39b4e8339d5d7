package key

import (
	"fmt"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/curve"
	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/rand"
)

// PublicKey is a curve point together with the curve it lives on,
// grounded on ECPublicKey.py.
type PublicKey struct {
	point *curve.Point
	curve *curve.Curve
}

// NewPublicKey wraps an existing curve point as a public key, validating
// that it lies on its curve and is not the neutral element.
func NewPublicKey(point *curve.Point) (*PublicKey, error) {
	if point.IsNeutral() {
		return nil, fmt.Errorf("%w: public key point cannot be the neutral element", eccerr.ErrValueOutOfRange)
	}
	c := point.Curve()
	ok, err := c.OnCurve(point)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: public key point is not on its curve", eccerr.ErrNotOnCurve)
	}
	return &PublicKey{point: point, curve: c}, nil
}

// Point returns the underlying curve point.
func (pub *PublicKey) Point() *curve.Point { return pub.point }

// Curve returns the curve this key lives on.
func (pub *PublicKey) Curve() *curve.Curve { return pub.curve }

// PrivateKey pairs a secret scalar with its curve and the public key
// derived from it at construction, grounded on ECPrivateKey.py. seed is non-nil only for keys
// produced by EdDSAGenerate/EdDSADecodePrivate, since EdDSA signing needs
// the original seed bytes, not just the derived scalar.
type PrivateKey struct {
	scalar *big.Int
	curve  *curve.Curve
	pub    *PublicKey
	seed   []byte
}

// New builds a private key from an explicit scalar, deriving the matching
// public key as [scalar]G. scalar must lie in [1, n-1].
func New(scalar *big.Int, c *curve.Curve) (*PrivateKey, error) {
	if scalar.Sign() <= 0 || scalar.Cmp(c.N()) >= 0 {
		return nil, fmt.Errorf("%w: private scalar must be in [1, n-1]", eccerr.ErrValueOutOfRange)
	}
	if !c.HasGenerator() {
		return nil, fmt.Errorf("%w: curve has no generator configured", eccerr.ErrUnsupportedOp)
	}
	point, err := c.G().Mul(scalar)
	if err != nil {
		return nil, err
	}
	pub, err := NewPublicKey(point)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{scalar: scalar, curve: c, pub: pub}, nil
}

// Generate samples a uniformly random scalar in [1, n-1] and builds the
// matching key pair, grounded on ECPrivateKey.generate.
func Generate(c *curve.Curve, src rand.Source) (*PrivateKey, error) {
	if !c.HasGenerator() {
		return nil, fmt.Errorf("%w: curve has no generator configured", eccerr.ErrUnsupportedOp)
	}
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(c.N(), one)
	scalar, err := src.RandIntIn(one, nMinus1)
	if err != nil {
		return nil, err
	}
	return New(scalar, c)
}

// Scalar returns the private scalar d.
func (priv *PrivateKey) Scalar() *big.Int { return new(big.Int).Set(priv.scalar) }

// Curve returns the curve this key lives on.
func (priv *PrivateKey) Curve() *curve.Curve { return priv.curve }

// Public returns the matching public key.
func (priv *PrivateKey) Public() *PublicKey { return priv.pub }
