package key

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"github.com/johndoe31415/ecctoolkit/curve"
	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/rand"
)

// ECDSASignature is the structural (r, s, hash_name) triple spec.md §4.4
// and §6 call for; ASN.1/DER encoding is left to callers.
type ECDSASignature struct {
	R, S     *big.Int
	HashName string
}

// hashConstructors mirrors Python's hashlib.new(name) dispatch used by
// Tools.py/PrivKeyOps.py: ECDSA digests are named by a short string, not
// selected at the call site as a concrete type.
var hashConstructors = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

func digestByName(hashName string, msg []byte) ([]byte, error) {
	ctor, ok := hashConstructors[hashName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown hash function %q", eccerr.ErrUnsupportedOp, hashName)
	}
	h := ctor()
	h.Write(msg)
	return h.Sum(nil), nil
}

// ECDSASignHash signs a precomputed digest, grounded on
// PrivKeyOps.PrivKeyOpECDSASign. If k is nil a fresh nonce is drawn from
// src. hashName is carried through for the returned signature only; it
// plays no role in the arithmetic here.
func (priv *PrivateKey) ECDSASignHash(digest []byte, hashName string, k *big.Int, src rand.Source) (*ECDSASignature, error) {
	c := priv.curve
	n := c.N()
	e := ECDSAMsgDigestToInt(digest, n)

	for {
		nonce := k
		if nonce == nil {
			var err error
			nonce, err = src.RandIntIn(big.NewInt(1), new(big.Int).Sub(n, big.NewInt(1)))
			if err != nil {
				return nil, err
			}
		}

		R, err := c.G().Mul(nonce)
		if err != nil {
			return nil, err
		}
		if R.IsNeutral() {
			if k != nil {
				return nil, fmt.Errorf("%w: supplied nonce produced the neutral element", eccerr.ErrValueOutOfRange)
			}
			continue
		}
		r := new(big.Int).Mod(R.X().Int(), n)
		if r.Sign() == 0 {
			if k != nil {
				return nil, fmt.Errorf("%w: supplied nonce produced r = 0", eccerr.ErrValueOutOfRange)
			}
			continue
		}

		kInv := new(big.Int).ModInverse(nonce, n)
		if kInv == nil {
			return nil, fmt.Errorf("%w: nonce is not invertible mod n", eccerr.ErrValueOutOfRange)
		}
		s := new(big.Int).Mul(priv.scalar, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			if k != nil {
				return nil, fmt.Errorf("%w: supplied nonce produced s = 0", eccerr.ErrValueOutOfRange)
			}
			continue
		}

		return &ECDSASignature{R: r, S: s, HashName: hashName}, nil
	}
}

// ECDSASign hashes msg with the named hash function and signs the
// resulting digest.
func (priv *PrivateKey) ECDSASign(msg []byte, hashName string, src rand.Source) (*ECDSASignature, error) {
	digest, err := digestByName(hashName, msg)
	if err != nil {
		return nil, err
	}
	return priv.ECDSASignHash(digest, hashName, nil, src)
}

// ECDSAVerifyHash checks sig against a precomputed digest, grounded on
// ECKeypair.verify_hash / PointOpECDSAVerify.
func (pub *PublicKey) ECDSAVerifyHash(digest []byte, sig *ECDSASignature) (bool, error) {
	c := pub.curve
	n := c.N()
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false, nil
	}
	e := ECDSAMsgDigestToInt(digest, n)

	w := new(big.Int).ModInverse(sig.S, n)
	if w == nil {
		return false, nil
	}
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1, err := c.G().Mul(u1)
	if err != nil {
		return false, err
	}
	p2, err := pub.point.Mul(u2)
	if err != nil {
		return false, err
	}
	p, err := c.Add(p1, p2)
	if err != nil {
		return false, err
	}
	if p.IsNeutral() {
		return false, nil
	}
	x := new(big.Int).Mod(p.X().Int(), n)
	return x.Cmp(sig.R) == 0, nil
}

// ECDSAVerify hashes msg with sig.HashName and checks it against sig.
func (pub *PublicKey) ECDSAVerify(msg []byte, sig *ECDSASignature) (bool, error) {
	digest, err := digestByName(sig.HashName, msg)
	if err != nil {
		return false, err
	}
	return pub.ECDSAVerifyHash(digest, sig)
}

// ExploitReusedNonce recovers the nonce k and private scalar d shared by
// two ECDSA signatures that reused the same nonce (equal r), grounded on
// spec.md §4.4's reused-nonce recovery and Ed25519.py-adjacent
// cryptanalysis helpers in the original source.
func ExploitReusedNonce(c *curve.Curve, digest1 []byte, sig1 *ECDSASignature, digest2 []byte, sig2 *ECDSASignature) (k, d *big.Int, err error) {
	n := c.N()
	if sig1.R.Cmp(sig2.R) != 0 {
		return nil, nil, fmt.Errorf("%w: signatures do not share the same r", eccerr.ErrValueOutOfRange)
	}
	e1 := ECDSAMsgDigestToInt(digest1, n)
	e2 := ECDSAMsgDigestToInt(digest2, n)

	sDiff := new(big.Int).Sub(sig1.S, sig2.S)
	sDiff.Mod(sDiff, n)
	sDiffInv := new(big.Int).ModInverse(sDiff, n)
	if sDiffInv == nil {
		return nil, nil, fmt.Errorf("%w: s1 - s2 is not invertible mod n", eccerr.ErrValueOutOfRange)
	}
	eDiff := new(big.Int).Sub(e1, e2)
	k = new(big.Int).Mul(eDiff, sDiffInv)
	k.Mod(k, n)

	rInv := new(big.Int).ModInverse(sig1.R, n)
	if rInv == nil {
		return nil, nil, fmt.Errorf("%w: r is not invertible mod n", eccerr.ErrValueOutOfRange)
	}
	d = new(big.Int).Mul(k, sig1.S)
	d.Sub(d, e1)
	d.Mul(d, rInv)
	d.Mod(d, n)
	return k, d, nil
}
