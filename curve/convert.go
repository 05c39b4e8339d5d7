package curve

import (
	"fmt"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/field"
)

// Convert maps p, a point on a twisted Edwards (resp. Montgomery) curve, to
// the birationally equivalent point on target, a Montgomery (resp. twisted
// Edwards) curve. Grounded on PointOps.py's PointOpCurveConversion.convert;
// after conversion the result is checked against target's curve equation,
// a hard post-condition per spec.md §4.3.
func Convert(p *Point, target *Curve) (*Point, error) {
	if p.neutral {
		return target.Neutral(), nil
	}
	src := p.curve

	var result *Point
	switch {
	case src.Family == TwistedEdwards && target.Family == MontgomeryFamily:
		one := field.FromInt64(1, src.p)
		u, err := one.Add(p.y).Div(one.Sub(p.y))
		if err != nil {
			return nil, err
		}
		v, err := one.Add(p.y).Div(one.Sub(p.y).Mul(p.x))
		if err != nil {
			return nil, err
		}
		scale, err := scaleFactorEdwardsToMontgomery(src, target)
		if err != nil {
			return nil, err
		}
		v = v.Mul(target.elem(scale.Int()))
		result = target.newPoint(target.elem(u.Int()), target.elem(v.Int()))

	case src.Family == MontgomeryFamily && target.Family == TwistedEdwards:
		one := field.FromInt64(1, src.p)
		u, v := p.x, p.y
		y, err := u.Sub(one).Div(u.Add(one))
		if err != nil {
			return nil, err
		}
		x, err := one.Add(y).Neg().Div(v.Mul(y.Sub(one)))
		if err != nil {
			return nil, err
		}
		scale, err := scaleFactorEdwardsToMontgomery(target, src)
		if err != nil {
			return nil, err
		}
		x = x.Mul(target.elem(scale.Int()))
		result = target.newPoint(target.elem(x.Int()), target.elem(y.Int()))

	default:
		return nil, fmt.Errorf("%w: conversion only defined between twisted Edwards and Montgomery curves", eccerr.ErrUnsupportedOp)
	}

	ok, err := target.OnCurve(result)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: converted point failed the target curve equation", eccerr.ErrNotOnCurve)
	}
	return result, nil
}

// scaleFactorEdwardsToMontgomery computes the Montgomery v-coordinate
// scaling factor needed when montCurve's b differs from twedCurve's native
// b (= 4/(a-d)). Grounded verbatim on
// PointOps.py's __pconv_twed_mont_scalefactor.
func scaleFactorEdwardsToMontgomery(twed, mont *Curve) (field.Elem, error) {
	_, nativeB, err := twed.ToMontgomeryNativeParams()
	if err != nil {
		return field.Elem{}, err
	}
	montB, err := mont.B()
	if err != nil {
		return field.Elem{}, err
	}
	if nativeB.Equal(montB) {
		return field.FromInt64(1, twed.p), nil
	}

	if twed.HasGenerator() && mont.HasGenerator() {
		one := field.FromInt64(1, twed.p)
		gy := twed.g.y
		gx := twed.g.x
		gv, err := one.Add(gy).Div(one.Sub(gy).Mul(gx))
		if err != nil {
			return field.Elem{}, err
		}
		scale, err := mont.g.y.Div(gv)
		if err != nil {
			return field.Elem{}, err
		}
		return scale, nil
	}

	if nativeB.IsQR() {
		ratio, err := montB.Div(nativeB)
		if err != nil {
			return field.Elem{}, err
		}
		root, _, ok := ratio.Sqrt()
		if !ok {
			return field.Elem{}, fmt.Errorf("%w: b ratio is not a square mod p", eccerr.ErrNoSquareRoot)
		}
		return root.Inverse()
	}

	return field.Elem{}, fmt.Errorf("%w: native b is a quadratic non-residue, scale factor is unsupported", eccerr.ErrUnsupportedOp)
}
