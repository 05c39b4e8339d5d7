package curve

import (
	"fmt"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/field"
)

// NewShortWeierstrass constructs y² = x³ + ax + b (mod p), grounded on
// ShortWeierstrassCurve.__init__. gx/gy may both be nil for a curve with no
// designated generator.
func NewShortWeierstrass(a, b, p, n, h, gx, gy *big.Int, name string) (*Curve, error) {
	return newCurve(ShortWeierstrass, p, a, b, n, h, gx, gy, name, func(mod *field.Modulus, a, b field.Elem) error {
		// 4a³ + 27b² ≠ 0 (mod p)
		lhs := a.ExpInt64(3).MulInt64(4).Add(b.ExpInt64(2).MulInt64(27))
		if lhs.IsZero() {
			return fmt.Errorf("%w: curve is singular (4a³+27b² = 0)", eccerr.ErrValueOutOfRange)
		}
		return nil
	})
}

func (c *Curve) weierstrassAdd(p, q *Point) (*Point, error) {
	neg, err := c.Negate(q)
	if err != nil {
		return nil, err
	}
	if p.Equal(neg) {
		return c.Neutral(), nil
	}
	if p.Equal(q) {
		// Doubling: s = (3x² + a) / (2y)
		num := p.x.Mul(p.x).MulInt64(3).Add(c.a)
		den := p.y.MulInt64(2)
		s, err := num.Div(den)
		if err != nil {
			return nil, err
		}
		newX := s.Mul(s).Sub(p.x.MulInt64(2))
		newY := s.Mul(p.x.Sub(newX)).Sub(p.y)
		return c.newPoint(newX, newY), nil
	}
	// Addition: s = (y2 - y1) / (x2 - x1)
	num := p.y.Sub(q.y)
	den := p.x.Sub(q.x)
	s, err := num.Div(den)
	if err != nil {
		return nil, err
	}
	newX := s.Mul(s).Sub(p.x).Sub(q.x)
	newY := s.Mul(p.x.Sub(newX)).Sub(p.y)
	return c.newPoint(newX, newY), nil
}

// GetPointWithX solves the curve's equation (for any of the three
// families) for y and returns both roots, or ok=false if x has no
// corresponding point.
func (c *Curve) GetPointWithX(x *big.Int) (p1, p2 *Point, ok bool, err error) {
	switch c.Family {
	case ShortWeierstrass:
		xe := c.elem(x)
		yy := xe.Mul(xe).Mul(xe).Add(c.a.Mul(xe)).Add(c.b)
		r1, r2, found := yy.Sqrt()
		if !found {
			return nil, nil, false, nil
		}
		return c.newPoint(xe, r1), c.newPoint(xe, r2), true, nil
	case MontgomeryFamily:
		xe := c.elem(x)
		x2 := xe.Mul(xe)
		num := xe.Mul(x2).Add(c.a.Mul(x2)).Add(xe)
		yy, err := num.Div(c.b)
		if err != nil {
			return nil, nil, false, err
		}
		r1, r2, found := yy.Sqrt()
		if !found {
			return nil, nil, false, nil
		}
		return c.newPoint(xe, r1), c.newPoint(xe, r2), true, nil
	case TwistedEdwards:
		xe := c.elem(x)
		x2 := xe.Mul(xe)
		one := field.FromInt64(1, c.p)
		num := one.Sub(c.a.Mul(x2))
		den := one.Sub(c.b.Mul(x2))
		yy, err := num.Div(den)
		if err != nil {
			return nil, nil, false, err
		}
		r1, r2, found := yy.Sqrt()
		if !found {
			return nil, nil, false, nil
		}
		return c.newPoint(xe, r1), c.newPoint(xe, r2), true, nil
	default:
		return nil, nil, false, fmt.Errorf("%w: unknown curve family", eccerr.ErrUnsupportedOp)
	}
}

// Compress returns (x, parity(y)). Defined for short Weierstrass only, per
// spec.md §4.2.
func (c *Curve) Compress(p *Point) (x *big.Int, yParity uint, err error) {
	if c.Family != ShortWeierstrass {
		return nil, 0, fmt.Errorf("%w: compression only defined for short Weierstrass curves", eccerr.ErrUnsupportedOp)
	}
	if p.neutral {
		return nil, 0, fmt.Errorf("%w: cannot compress the neutral element", eccerr.ErrUnsupportedOp)
	}
	if err := c.sameCurve(p); err != nil {
		return nil, 0, err
	}
	return p.x.Int(), p.y.Parity(), nil
}

// Uncompress recovers the point for a compressed short-Weierstrass
// representation, picking the square root whose parity matches yParity.
func (c *Curve) Uncompress(x *big.Int, yParity uint) (*Point, error) {
	if c.Family != ShortWeierstrass {
		return nil, fmt.Errorf("%w: compression only defined for short Weierstrass curves", eccerr.ErrUnsupportedOp)
	}
	xe := c.elem(x)
	alpha := xe.Mul(xe).Mul(xe).Add(c.a.Mul(xe)).Add(c.b)
	r1, r2, ok := alpha.Sqrt()
	if !ok {
		return nil, fmt.Errorf("%w: x=%s has no corresponding y", eccerr.ErrNoSquareRoot, x.String())
	}
	if r1.Parity() == yParity {
		return c.newPoint(xe, r1), nil
	}
	return c.newPoint(xe, r2), nil
}

// IsKoblitz reports whether the curve admits the efficient endomorphism
// that identifies "Koblitz curves": (b=0 ∧ p≡1 mod 4) or (a=0 ∧ p≡1 mod 3).
func (c *Curve) IsKoblitz() bool {
	if c.Family != ShortWeierstrass {
		return false
	}
	p := c.P()
	pMod4 := new(big.Int).Mod(p, big.NewInt(4))
	pMod3 := new(big.Int).Mod(p, big.NewInt(3))
	bIsZero := c.b.IsZero() && pMod4.Cmp(big.NewInt(1)) == 0
	aIsZero := c.a.IsZero() && pMod3.Cmp(big.NewInt(1)) == 0
	return bIsZero || aIsZero
}

// SecurityBitEstimate returns ⌊bit_length(n)/2⌋, minus 4 for Koblitz
// curves (a margin for the efficient endomorphism attack).
func (c *Curve) SecurityBitEstimate() int {
	bits := c.n.BitLen() / 2
	if c.IsKoblitz() {
		bits -= 4
	}
	return bits
}

// CurveTypeName mirrors the Python curvetype/prettyname properties.
func (c *Curve) CurveTypeName() string { return c.Family.String() }

// PrettyName returns a human-readable name, annotated "(Koblitz)" where
// applicable.
func (c *Curve) PrettyName() string {
	base := map[Family]string{
		ShortWeierstrass: "Short Weierstrass",
		MontgomeryFamily: "Montgomery",
		TwistedEdwards:   "Twisted Edwards",
	}[c.Family]
	if c.IsKoblitz() {
		return base + " (Koblitz)"
	}
	return base
}

// Isomorphism applies the standard short-Weierstrass isomorphism
// x → u²x, y → u³y (equivalently a → a·u⁴, b → b·u⁶), grounded on
// CurveOps.py's CurveOpIsomorphism.isomorphism.
func (c *Curve) Isomorphism(u *big.Int) (*Curve, error) {
	if c.Family != ShortWeierstrass {
		return nil, fmt.Errorf("%w: isomorphism only defined for short Weierstrass curves", eccerr.ErrUnsupportedOp)
	}
	if new(big.Int).Mod(u, c.P()).Sign() == 0 {
		return nil, fmt.Errorf("%w: u must be nonzero", eccerr.ErrValueOutOfRange)
	}
	ue := c.elem(u)
	newA := c.a.Mul(ue.ExpInt64(4))
	newB := c.b.Mul(ue.ExpInt64(6))
	var gx, gy *big.Int
	if c.g != nil {
		gx = c.g.x.Mul(ue.ExpInt64(2)).Int()
		gy = c.g.y.Mul(ue.ExpInt64(3)).Int()
	}
	return NewShortWeierstrass(newA.Int(), newB.Int(), c.P(), c.N(), c.H(), gx, gy, "")
}

// IsomorphismFixedA finds u = sqrt4(aTarget/a) and applies Isomorphism(u),
// grounded on CurveOps.py's isomorphism_fixed_a.
func (c *Curve) IsomorphismFixedA(aTarget *big.Int) (*Curve, error) {
	if c.Family != ShortWeierstrass {
		return nil, fmt.Errorf("%w: isomorphism only defined for short Weierstrass curves", eccerr.ErrUnsupportedOp)
	}
	scalar, err := c.elem(aTarget).Div(c.a)
	if err != nil {
		return nil, err
	}
	u, ok := scalar.Sqrt4()
	if !ok {
		return nil, fmt.Errorf("%w: no quartic root of a_target/a mod p", eccerr.ErrNoSquareRoot)
	}
	return c.Isomorphism(u.Int())
}

// CountPoints walks g, 2g, 3g, ... until it hits Neutral, returning the
// order of the subgroup generated by g. O(n): a diagnostic/testing aid,
// never suitable for cryptographic-size orders. Grounded on
// EllipticCurve.countpoints / PointOps.py's naive_order_calculation.
func (c *Curve) CountPoints(g *Point) (int, error) {
	if err := c.sameCurve(g); err != nil {
		return 0, err
	}
	cur := g
	order := 1
	for !cur.IsNeutral() {
		order++
		next, err := c.Add(cur, g)
		if err != nil {
			return 0, err
		}
		cur = next
		if order > (1 << 24) {
			return 0, fmt.Errorf("%w: CountPoints exceeded its diagnostic budget, this curve is too large", eccerr.ErrUnsupportedOp)
		}
	}
	return order, nil
}
