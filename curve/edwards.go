package curve

import (
	"fmt"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/field"
)

// EdDSAHash names the hash function a twisted Edwards curve uses to derive
// EdDSA keys, nonces and challenges, per spec.md §4.7 and §9's "quirks
// table" design note: this is an attribute of the curve's domain
// parameters, not of any particular signing call, so protocol code (the
// key package) reads it straight off a *Curve instead of consulting the
// name registry.
type EdDSAHash int

const (
	// EdDSAHashSHA512 is the RFC 8032 Ed25519 choice. It is also the zero
	// value, matching Ed25519.py's hardcoded hashlib.sha512 and the
	// Ed448-Goldilocks alias that reuses it (spec.md §9).
	EdDSAHashSHA512 EdDSAHash = iota
	// EdDSAHashSHAKE256 is the RFC 8032 Ed448 choice.
	EdDSAHashSHAKE256
)

// EdDSAHash reports which hash function this curve uses for EdDSA.
func (c *Curve) EdDSAHash() EdDSAHash { return c.eddsaHash }

// SetEdDSAHash overrides the EdDSA hash function for this curve. Curves
// default to EdDSAHashSHA512; callers constructing an Ed448-style curve
// that wants RFC 8032 SHAKE256 semantics must call this explicitly.
func (c *Curve) SetEdDSAHash(h EdDSAHash) { c.eddsaHash = h }

// NewTwistedEdwards constructs ax² + y² = 1 + dx²y² (mod p), grounded on
// TwistedEdwardsCurve.__init__.
func NewTwistedEdwards(a, d, p, n, h, gx, gy *big.Int, name string) (*Curve, error) {
	return newCurve(TwistedEdwards, p, a, d, n, h, gx, gy, name, func(mod *field.Modulus, a, d field.Elem) error {
		// d(1-d) ≠ 0 (mod p)
		if d.Mul(field.FromInt64(1, mod).Sub(d)).IsZero() {
			return fmt.Errorf("%w: curve is singular (d(1-d) = 0)", eccerr.ErrValueOutOfRange)
		}
		return nil
	})
}

// edwardsAdd implements the complete twisted Edwards addition law; it
// needs no special-case branch for doubling or negation since the formula
// is complete, grounded on TwistedEdwardsCurve.point_addition. A result of
// (0, 1) is returned as the flagged Neutral point.
func (c *Curve) edwardsAdd(p, q *Point) (*Point, error) {
	one := field.FromInt64(1, c.p)
	cross := p.x.Mul(q.x).Mul(p.y).Mul(q.y)

	xNum := p.x.Mul(q.y).Add(q.x.Mul(p.y))
	xDen := one.Add(c.b.Mul(cross))
	newX, err := xNum.Div(xDen)
	if err != nil {
		return nil, err
	}

	yNum := p.y.Mul(q.y).Sub(c.a.Mul(p.x).Mul(q.x))
	yDen := one.Sub(c.b.Mul(cross))
	newY, err := yNum.Div(yDen)
	if err != nil {
		return nil, err
	}

	if newX.IsZero() && newY.Equal(one) {
		return c.Neutral(), nil
	}
	return c.newPoint(newX, newY), nil
}

// eddsaBitLength returns b, the bit length used for EdDSA encoding:
// bit_length(p) + 1, per spec.md §4.2 (256 for Ed25519, 449 for Ed448,
// whose encoding rounds this up to 57 bytes).
func (c *Curve) eddsaBitLength() int {
	return c.P().BitLen() + 1
}

// EdDSAByteLen returns ⌈b/8⌉, the width of an EdDSA-encoded point,
// signature half and private seed for this curve (32 for Ed25519, 57 for
// Ed448-Goldilocks/Ed448).
func (c *Curve) EdDSAByteLen() int {
	return (c.eddsaBitLength() + 7) / 8
}

// EdDSAEncode serializes P as required by EdDSA: y little-endian in
// ⌈b/8⌉ bytes, with parity(x) overwritten into the top bit of the last
// byte. Grounded on PointOps.py's PointOpEDDSAEncoding.eddsa_encode.
func (c *Curve) EdDSAEncode(p *Point) ([]byte, error) {
	if c.Family != TwistedEdwards {
		return nil, fmt.Errorf("%w: EdDSA encoding only defined for twisted Edwards curves", eccerr.ErrUnsupportedOp)
	}
	if p.neutral {
		return nil, fmt.Errorf("%w: cannot EdDSA-encode the neutral element", eccerr.ErrUnsupportedOp)
	}
	if err := c.sameCurve(p); err != nil {
		return nil, err
	}
	byteLen := (c.eddsaBitLength() + 7) / 8
	enc := p.y.Int()
	if p.x.Parity() == 1 {
		enc.SetBit(enc, 8*byteLen-1, 1)
	}
	return intToBytesLE(enc, byteLen), nil
}

// EdDSADecode deserializes an EdDSA-encoded point. Grounded on
// PointOps.py's PointOpEDDSAEncoding.eddsa_decode / __eddsa_recoverx.
func (c *Curve) EdDSADecode(data []byte) (*Point, error) {
	if c.Family != TwistedEdwards {
		return nil, fmt.Errorf("%w: EdDSA decoding only defined for twisted Edwards curves", eccerr.ErrUnsupportedOp)
	}
	byteLen := (c.eddsaBitLength() + 7) / 8
	if len(data) != byteLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", eccerr.ErrMalformedEncoding, byteLen, len(data))
	}
	enc := bytesToIntLE(data)
	bitLen := c.P().BitLen()
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	mask.Sub(mask, big.NewInt(1))
	y := new(big.Int).And(enc, mask)
	// The sign bit lives in the top bit of the last octet (8*byteLen-1),
	// not at bitLen: for curves like Ed448 whose ⌈b/8⌉ byte encoding pads
	// past p's bit length, the two positions differ and reading bitLen
	// would silently pick up one of the zeroed padding bits instead.
	hibit := enc.Bit(8*byteLen - 1)

	x, err := c.eddsaRecoverX(y)
	if err != nil {
		return nil, err
	}
	if x.Parity() != uint(hibit) {
		x = x.Neg()
	}
	ye := c.elem(y)
	pt := c.newPoint(x, ye)
	ok, err := c.OnCurve(pt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: decoded point not on curve", eccerr.ErrMalformedEncoding)
	}
	return pt, nil
}

// eddsaRecoverX solves x² = (1-y²)/(a-d·y²) and extracts a square root
// using the p≡5(mod 8) trick (fast path for Ed25519-style curves) with a
// fallback to the general Sqrt for p≡3(mod 4) curves such as Ed448.
func (c *Curve) eddsaRecoverX(yInt *big.Int) (field.Elem, error) {
	y := c.elem(yInt)
	one := field.FromInt64(1, c.p)
	xx, err := one.Sub(y.Mul(y)).Div(c.a.Sub(c.b.Mul(y).Mul(y)))
	if err != nil {
		return field.Elem{}, err
	}

	eight := big.NewInt(8)
	pMod8 := new(big.Int).Mod(c.P(), eight)
	if pMod8.Cmp(big.NewInt(5)) == 0 {
		exp := new(big.Int).Add(c.P(), big.NewInt(3))
		exp.Div(exp, eight)
		x, err := xx.Exp(exp)
		if err != nil {
			return field.Elem{}, err
		}
		if !x.Mul(x).Equal(xx) {
			// For p ≡ 5 (mod 8), 2 is a non-residue, so 2^((p-1)/4) is sqrt(-1).
			iExp := new(big.Int).Sub(c.P(), big.NewInt(1))
			iExp.Div(iExp, big.NewInt(4))
			i, err := field.FromInt64(2, c.p).Exp(iExp)
			if err != nil {
				return field.Elem{}, err
			}
			x = x.Mul(i)
		}
		if !x.Mul(x).Equal(xx) {
			return field.Elem{}, fmt.Errorf("%w: y-coordinate has no corresponding x", eccerr.ErrMalformedEncoding)
		}
		return x, nil
	}

	x, _, ok := xx.Sqrt()
	if !ok {
		return field.Elem{}, fmt.Errorf("%w: y-coordinate has no corresponding x", eccerr.ErrMalformedEncoding)
	}
	return x, nil
}

// ToMontgomeryNativeParams computes the native (a,b) Montgomery coefficients
// birationally equivalent to this twisted Edwards curve: a_m = 2(a+d)/(a-d),
// b_native = 4/(a-d). Grounded on TwistedEdwardsCurve.to_montgomery.
func (c *Curve) ToMontgomeryNativeParams() (a, b field.Elem, err error) {
	if c.Family != TwistedEdwards {
		return field.Elem{}, field.Elem{}, fmt.Errorf("%w: only defined for twisted Edwards curves", eccerr.ErrUnsupportedOp)
	}
	diff := c.a.Sub(c.b)
	a, err = field.FromInt64(2, c.p).Mul(c.a.Add(c.b)).Div(diff)
	if err != nil {
		return field.Elem{}, field.Elem{}, err
	}
	b, err = field.FromInt64(4, c.p).Div(diff)
	if err != nil {
		return field.Elem{}, field.Elem{}, err
	}
	return a, b, nil
}

func intToBytesLE(v *big.Int, length int) []byte {
	buf := make([]byte, length)
	bytes := v.Bytes() // big-endian
	for i, b := range bytes {
		pos := len(bytes) - 1 - i
		if pos < length {
			buf[pos] = b
		}
	}
	return buf
}

func bytesToIntLE(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
