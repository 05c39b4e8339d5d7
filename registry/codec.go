package registry

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/johndoe31415/ecctoolkit/curve"
	"github.com/johndoe31415/ecctoolkit/eccerr"
)

// wireParams is the CBOR wire representation of a Curve's DomainParams,
// component N of the domain stack. Field names are kept short since they
// travel on the wire; big.Int fields round-trip through cbor's built-in
// math/big support.
type wireParams struct {
	CurveType string   `cbor:"1,keyasint"`
	Name      string   `cbor:"2,keyasint"`
	A         *big.Int `cbor:"3,keyasint"`
	B         *big.Int `cbor:"4,keyasint,omitempty"`
	D         *big.Int `cbor:"5,keyasint,omitempty"`
	P         *big.Int `cbor:"6,keyasint"`
	N         *big.Int `cbor:"7,keyasint"`
	H         *big.Int `cbor:"8,keyasint"`
	Gx        *big.Int `cbor:"9,keyasint,omitempty"`
	Gy        *big.Int `cbor:"10,keyasint,omitempty"`
}

// ExportParams serialises c's domain parameters to CBOR, so a curve built
// at runtime (e.g. via Curve.Isomorphism) can be handed to another process
// without re-deriving it from a registry name.
func ExportParams(c *curve.Curve) ([]byte, error) {
	dp := c.DomainParams()
	w := wireParams{
		CurveType: dp.CurveType,
		Name:      c.Name(),
		A:         dp.A,
		P:         dp.P,
		N:         dp.N,
		H:         dp.H,
	}
	switch dp.CurveType {
	case curve.TwistedEdwards.String():
		w.D = dp.D
	default:
		w.B = dp.B
	}
	if dp.G != nil {
		w.Gx = dp.G.X().Int()
		w.Gy = dp.G.Y().Int()
	}
	return cbor.Marshal(w)
}

// ImportParams reconstructs a Curve from CBOR produced by ExportParams.
// The curve is validated exactly as if it had been constructed directly
// (non-singularity, generator order), per spec.md §4.3's invariant that no
// curve value exists without having passed those checks.
func ImportParams(data []byte) (*curve.Curve, error) {
	var w wireParams
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", eccerr.ErrMalformedEncoding, err)
	}
	switch w.CurveType {
	case curve.ShortWeierstrass.String():
		return curve.NewShortWeierstrass(w.A, w.B, w.P, w.N, w.H, w.Gx, w.Gy, w.Name)
	case curve.MontgomeryFamily.String():
		return curve.NewMontgomery(w.A, w.B, w.P, w.N, w.H, w.Gx, w.Gy, w.Name)
	case curve.TwistedEdwards.String():
		return curve.NewTwistedEdwards(w.A, w.D, w.P, w.N, w.H, w.Gx, w.Gy, w.Name)
	default:
		return nil, fmt.Errorf("%w: unknown curve type %q in CBOR payload", eccerr.ErrMalformedEncoding, w.CurveType)
	}
}
