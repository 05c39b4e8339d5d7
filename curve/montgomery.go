package curve

import (
	"fmt"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/field"
)

// NewMontgomery constructs by² = x³ + ax² + x (mod p). Non-singularity for
// the Montgomery family reduces to b ≠ 0 and a² ≠ 4 (the cubic
// x³+ax²+x has no repeated root), checked here since no Python
// MontgomeryCurve module survived retrieval.
func NewMontgomery(a, b, p, n, h, gx, gy *big.Int, name string) (*Curve, error) {
	return newCurve(MontgomeryFamily, p, a, b, n, h, gx, gy, name, func(mod *field.Modulus, a, b field.Elem) error {
		if b.IsZero() {
			return fmt.Errorf("%w: curve is singular (b = 0)", eccerr.ErrValueOutOfRange)
		}
		if a.Mul(a).Equal(field.FromInt64(4, mod)) {
			return fmt.Errorf("%w: curve is singular (a² = 4)", eccerr.ErrValueOutOfRange)
		}
		return nil
	})
}

// montgomeryAdd implements the affine addition/doubling law for
// by² = x³+ax²+x, the direct analogue of the Weierstrass law scaled by b
// (spec.md §4.2: "full affine formulas analogous to Weierstrass").
func (c *Curve) montgomeryAdd(p, q *Point) (*Point, error) {
	neg, err := c.Negate(q)
	if err != nil {
		return nil, err
	}
	if p.Equal(neg) {
		return c.Neutral(), nil
	}
	if p.Equal(q) {
		// λ = (3x² + 2ax + 1) / (2by)
		num := p.x.Mul(p.x).MulInt64(3).Add(c.a.Mul(p.x).MulInt64(2)).Add(field.FromInt64(1, c.p))
		den := c.b.Mul(p.y).MulInt64(2)
		lambda, err := num.Div(den)
		if err != nil {
			return nil, err
		}
		return c.montgomeryThirdPoint(lambda, p.x, p.x, p.x, p.y), nil
	}
	num := p.y.Sub(q.y)
	den := p.x.Sub(q.x)
	lambda, err := num.Div(den)
	if err != nil {
		return nil, err
	}
	return c.montgomeryThirdPoint(lambda, p.x, p.x, q.x, p.y), nil
}

// montgomeryThirdPoint applies x3 = bλ² - a - x1 - x2, y3 = λ(x1-x3) - y1.
func (c *Curve) montgomeryThirdPoint(lambda, xForY, x1, x2, y1 field.Elem) *Point {
	newX := c.b.Mul(lambda).Mul(lambda).Sub(c.a).Sub(x1).Sub(x2)
	newY := lambda.Mul(xForY.Sub(newX)).Sub(y1)
	return c.newPoint(newX, newY)
}

// XOnlyLadder computes x([k]P) using only the x-coordinate of P, via the
// standard left-to-right Montgomery ladder on (X:Z) pairs (spec.md
// §4.2.1). Returns ok=false when the result is the point at infinity.
func (c *Curve) XOnlyLadder(k *big.Int, xP field.Elem) (field.Elem, bool, error) {
	if c.Family != MontgomeryFamily {
		return field.Elem{}, false, fmt.Errorf("%w: x-only ladder only defined for Montgomery curves", eccerr.ErrUnsupportedOp)
	}
	if k.Sign() < 0 {
		return field.Elem{}, false, fmt.Errorf("%w: negative scalar", eccerr.ErrValueOutOfRange)
	}

	one := field.FromInt64(1, c.p)
	zero := field.FromInt64(0, c.p)

	// a24 = (a+2)/4, the constant used by the combined add-and-double step.
	a24, err := c.a.Add(field.FromInt64(2, c.p)).Div(field.FromInt64(4, c.p))
	if err != nil {
		return field.Elem{}, false, err
	}

	x0, z0 := one, zero // R0 = (1, 0), the identity in projective form
	x1, z1 := xP, one   // R1 = (xP, 1)

	bits := k.BitLen()
	for i := bits - 1; i >= 0; i-- {
		bit := k.Bit(i)
		if bit == 1 {
			x0, z0, x1, z1 = x1, z1, x0, z0
		}
		// Differential add: (x1,z1) = add(R0, R1), using the fixed x1
		// coordinate of P (xP, the difference R1-R0) throughout.
		da := x1.Sub(z1).Mul(x0.Add(z0))
		cb := x1.Add(z1).Mul(x0.Sub(z0))
		newX1 := da.Add(cb).Mul(da.Add(cb))
		newZ1 := xP.Mul(da.Sub(cb).Mul(da.Sub(cb)))

		// Double: (x0,z0) = double(R0)
		aa := x0.Add(z0).Mul(x0.Add(z0))
		bb := x0.Sub(z0).Mul(x0.Sub(z0))
		e := aa.Sub(bb)
		newX0 := aa.Mul(bb)
		newZ0 := e.Mul(bb.Add(a24.Mul(e)))

		x0, z0, x1, z1 = newX0, newZ0, newX1, newZ1
		if bit == 1 {
			x0, z0, x1, z1 = x1, z1, x0, z0
		}
	}

	if z0.IsZero() {
		return field.Elem{}, false, nil
	}
	result, err := x0.Div(z0)
	if err != nil {
		return field.Elem{}, false, err
	}
	return result, true, nil
}
