package curve

// Family tags which of the three algebraic forms a Curve implements. Point
// dispatches group-law operations on this tag rather than through an
// interface hierarchy, per the "tagged curve variants" design note: family
// payload (a,b) vs (a,d) lives directly on Curve, selected by Family.
type Family int

const (
	ShortWeierstrass Family = iota
	MontgomeryFamily
	TwistedEdwards
)

func (f Family) String() string {
	switch f {
	case ShortWeierstrass:
		return "shortweierstrass"
	case MontgomeryFamily:
		return "montgomery"
	case TwistedEdwards:
		return "twistededwards"
	default:
		return "unknown"
	}
}
