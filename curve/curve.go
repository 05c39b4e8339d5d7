// Package curve implements the Curve abstraction (component D) and the
// unified AffinePoint representation with family-aware group-law dispatch
// (component C). Point and Curve share one package because the original
// Python AffineCurvePoint holds a live back-reference to the curve it
// belongs to and calls back into it for every group-law operation
// (point_addition, oncurve, compress, ...); modelling that in Go without an
// import cycle means Curve and Point must live together.
//
// Grounded on original_source/ecc/{EllipticCurve,AffineCurvePoint,
// ShortWeierstrassCurve,TwistedEdwardsCurve}.py; the Montgomery family's
// affine law and x-only ladder are reconstructed from spec.md §4.2/§4.2.1
// since the Python MontgomeryCurve module was not retrieved.
package curve

import (
	"fmt"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/field"
	"github.com/johndoe31415/ecctoolkit/internal/elog"
)

// DomainParams is the frozen parameter tuple spec.md §4.3 calls for,
// mirroring the Python *_DomainParameters namedtuples (one per family).
type DomainParams struct {
	CurveType string
	A         *big.Int
	B         *big.Int // short Weierstrass / Montgomery B coefficient
	D         *big.Int // twisted Edwards D coefficient
	P         *big.Int
	N         *big.Int
	H         *big.Int
	G         *Point
}

// Curve is a tagged variant over the three families. Common attributes are
// always populated; family-specific attributes (a,b) or (a,d) live in the
// same two Elem fields, interpreted per Family.
type Curve struct {
	Family Family

	p *field.Modulus
	a field.Elem
	b field.Elem // Weierstrass/Montgomery: b coefficient. Edwards: d coefficient.

	n *big.Int
	h *big.Int

	g *Point

	name    string
	aliases []string

	eddsaHash EdDSAHash
}

// P returns the field modulus.
func (c *Curve) P() *big.Int { return c.p.P() }

// Modulus returns the shared field context, so keys and EdDSA constants can
// bind FieldElements to the same prime without re-deriving it.
func (c *Curve) Modulus() *field.Modulus { return c.p }

// A returns the curve's a coefficient (meaningful for all three families).
func (c *Curve) A() field.Elem { return c.a }

// B returns the curve's b coefficient. Valid for ShortWeierstrass and
// MontgomeryFamily only.
func (c *Curve) B() (field.Elem, error) {
	if c.Family == TwistedEdwards {
		return field.Elem{}, fmt.Errorf("%w: twisted Edwards curves have no b coefficient, use D", eccerr.ErrUnsupportedOp)
	}
	return c.b, nil
}

// D returns the curve's d coefficient. Valid for TwistedEdwards only.
func (c *Curve) D() (field.Elem, error) {
	if c.Family != TwistedEdwards {
		return field.Elem{}, fmt.Errorf("%w: only twisted Edwards curves have a d coefficient", eccerr.ErrUnsupportedOp)
	}
	return c.b, nil
}

// N returns the order of the subgroup generated by G.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// H returns the cofactor.
func (c *Curve) H() *big.Int { return new(big.Int).Set(c.h) }

// G returns a clone of the generator point, or nil if none was configured.
// Generator getters clone so consumers that mutate in place (there are
// none in this package, but callers may build their own wrappers) cannot
// perturb the curve's own immutable parameter set.
func (c *Curve) G() *Point {
	if c.g == nil {
		return nil
	}
	clone := *c.g
	return &clone
}

// HasGenerator reports whether a generator was supplied at construction.
func (c *Curve) HasGenerator() bool { return c.g != nil }

// Name returns the curve's symbolic name, or "" if unnamed.
func (c *Curve) Name() string { return c.name }

// HasName reports whether the curve was constructed with a name.
func (c *Curve) HasName() bool { return c.name != "" }

// DomainParams returns the frozen parameter tuple for this curve.
func (c *Curve) DomainParams() DomainParams {
	dp := DomainParams{
		CurveType: c.Family.String(),
		A:         c.a.Int(),
		P:         c.P(),
		N:         c.N(),
		H:         c.H(),
		G:         c.G(),
	}
	switch c.Family {
	case TwistedEdwards:
		dp.D = c.b.Int()
	default:
		dp.B = c.b.Int()
	}
	return dp
}

// Neutral returns the identity element of the curve's group.
func (c *Curve) Neutral() *Point {
	return &Point{neutral: true, curve: c}
}

// IsNeutral reports whether P is the identity element.
func (c *Curve) IsNeutral(p *Point) bool { return p.neutral }

func (c *Curve) newPoint(x, y field.Elem) *Point {
	return &Point{x: x, y: y, curve: c}
}

func (c *Curve) elem(v *big.Int) field.Elem { return field.New(v, c.p) }

func (c *Curve) sameCurve(p *Point) error {
	if p.curve != c {
		return fmt.Errorf("%w: point bound to %v, operation on %v", eccerr.ErrCurveMismatch, p.curve.name, c.name)
	}
	return nil
}

// OnCurve checks whether P satisfies the curve equation. Neutral always
// satisfies it.
func (c *Curve) OnCurve(p *Point) (bool, error) {
	if err := c.sameCurve(p); err != nil {
		return false, err
	}
	if p.neutral {
		return true, nil
	}
	switch c.Family {
	case ShortWeierstrass:
		lhs := p.y.Mul(p.y)
		rhs := p.x.Mul(p.x).Mul(p.x).Add(c.a.Mul(p.x)).Add(c.b)
		return lhs.Equal(rhs), nil
	case MontgomeryFamily:
		lhs := c.b.Mul(p.y).Mul(p.y)
		x2 := p.x.Mul(p.x)
		rhs := p.x.Mul(x2).Add(c.a.Mul(x2)).Add(p.x)
		return lhs.Equal(rhs), nil
	case TwistedEdwards:
		x2 := p.x.Mul(p.x)
		y2 := p.y.Mul(p.y)
		lhs := c.a.Mul(x2).Add(y2)
		rhs := field.FromInt64(1, c.p).Add(c.b.Mul(x2).Mul(y2))
		return lhs.Equal(rhs), nil
	default:
		return false, fmt.Errorf("%w: unknown curve family", eccerr.ErrUnsupportedOp)
	}
}

// Negate returns -P.
func (c *Curve) Negate(p *Point) (*Point, error) {
	if err := c.sameCurve(p); err != nil {
		return nil, err
	}
	if p.neutral {
		return c.Neutral(), nil
	}
	switch c.Family {
	case ShortWeierstrass, MontgomeryFamily:
		return c.newPoint(p.x, p.y.Neg()), nil
	case TwistedEdwards:
		return c.newPoint(p.x.Neg(), p.y), nil
	default:
		return nil, fmt.Errorf("%w: unknown curve family", eccerr.ErrUnsupportedOp)
	}
}

// Add computes P + Q according to the curve's family-specific group law.
// Grounded on AffineCurvePoint.__iadd__ (Weierstrass) and
// TwistedEdwardsCurve.point_addition (complete Edwards formula); the
// Montgomery law is the direct analogue of Weierstrass scaled by B.
func (c *Curve) Add(p, q *Point) (*Point, error) {
	if err := c.sameCurve(p); err != nil {
		return nil, err
	}
	if err := c.sameCurve(q); err != nil {
		return nil, err
	}
	if p.neutral {
		return q.clone(), nil
	}
	if q.neutral {
		return p.clone(), nil
	}
	switch c.Family {
	case ShortWeierstrass:
		return c.weierstrassAdd(p, q)
	case MontgomeryFamily:
		return c.montgomeryAdd(p, q)
	case TwistedEdwards:
		return c.edwardsAdd(p, q)
	default:
		return nil, fmt.Errorf("%w: unknown curve family", eccerr.ErrUnsupportedOp)
	}
}

func (p *Point) clone() *Point {
	cp := *p
	return &cp
}

// ScalarMul computes [k]P by the right-to-left binary method (spec.md
// §4.2): start R = Neutral, T = P; for each bit of k from lsb, if the bit
// is set R += T, then T += T. [0]P is Neutral.
func (c *Curve) ScalarMul(k *big.Int, p *Point) (*Point, error) {
	if err := c.sameCurve(p); err != nil {
		return nil, err
	}
	if k.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative scalar %s", eccerr.ErrValueOutOfRange, k.String())
	}
	r := c.Neutral()
	t := p.clone()
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			var err error
			r, err = c.Add(r, t)
			if err != nil {
				return nil, err
			}
		}
		var err error
		t, err = c.Add(t, t)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Mul is sugar for p.Curve().ScalarMul(k, p).
func (p *Point) Mul(k *big.Int) (*Point, error) {
	return p.curve.ScalarMul(k, p)
}

// Equal compares two points by coordinates (or by being both Neutral).
func (p *Point) Equal(o *Point) bool {
	if p.curve != o.curve {
		return false
	}
	if p.neutral || o.neutral {
		return p.neutral == o.neutral
	}
	return p.x.Equal(o.x) && p.y.Equal(o.y)
}

// IsNeutral reports whether p is the curve's identity element.
func (p *Point) IsNeutral() bool { return p.neutral }

// X returns the x-coordinate. Undefined (zero value) for the neutral point.
func (p *Point) X() field.Elem { return p.x }

// Y returns the y-coordinate. Undefined (zero value) for the neutral point.
func (p *Point) Y() field.Elem { return p.y }

// Curve returns the curve this point is bound to.
func (p *Point) Curve() *Curve { return p.curve }

func (p *Point) String() string {
	if p.neutral {
		return "Neutral"
	}
	return fmt.Sprintf("(0x%x, 0x%x)", p.x.Int(), p.y.Int())
}

// Point is one of Neutral or Affine{x, y, curve_ref}, per spec.md §3. The
// neutral flag realises the tagged union instead of a nilable coordinate
// pair, so Neutral never needs a stand-in (0,1) affine representative even
// on twisted Edwards curves.
type Point struct {
	neutral bool
	x, y    field.Elem
	curve   *Curve
}

// NewPoint constructs an affine point on c and validates it against the
// curve equation (ErrNotOnCurve) before returning it.
func NewPoint(x, y *big.Int, c *Curve) (*Point, error) {
	p := c.newPoint(c.elem(x), c.elem(y))
	ok, err := c.OnCurve(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: (%s, %s) on %v", eccerr.ErrNotOnCurve, x.String(), y.String(), c.Family)
	}
	return p, nil
}

// newCurve is the shared constructor body for the three family
// constructors: binds the field context, checks the non-singularity
// invariant (delegated to the caller, who knows the right formula for its
// family), validates the generator if supplied, and logs registration.
func newCurve(family Family, p *big.Int, a, b *big.Int, n, h *big.Int, gx, gy *big.Int, name string, checkSingular func(mod *field.Modulus, a, b field.Elem) error) (*Curve, error) {
	mod := field.NewModulus(p)
	aElem := field.New(a, mod)
	bElem := field.New(b, mod)

	if err := checkSingular(mod, aElem, bElem); err != nil {
		return nil, err
	}

	c := &Curve{
		Family: family,
		p:      mod,
		a:      aElem,
		b:      bElem,
		n:      new(big.Int).Set(n),
		h:      new(big.Int).Set(h),
		name:   name,
	}

	if gx != nil && gy != nil {
		g, err := NewPoint(gx, gy, c)
		if err != nil {
			return nil, fmt.Errorf("generator not on curve: %w", err)
		}
		ng, err := c.ScalarMul(c.n, g)
		if err != nil {
			return nil, err
		}
		if !ng.IsNeutral() {
			return nil, fmt.Errorf("%w: [n]G is not neutral for curve %s", eccerr.ErrValueOutOfRange, name)
		}
		c.g = g
	}

	elog.L().Debug().Str("curve", name).Str("family", family.String()).Msg("curve constructed")
	return c, nil
}
