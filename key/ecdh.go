package key

import "github.com/johndoe31415/ecctoolkit/curve"

// ECDHCompute derives the shared point [d_self] Q_peer, grounded on
// PrivKeyOps.PrivKeyOpECDH. Callers wanting a scalar rather than a point
// read X() off the result, per spec.md §4.6.
func (priv *PrivateKey) ECDHCompute(peer *PublicKey) (*curve.Point, error) {
	return peer.point.Mul(priv.scalar)
}
