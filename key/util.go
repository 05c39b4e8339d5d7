// Package key implements private/public key objects and the ECDSA, ECIES,
// ECDH and EdDSA protocols built on top of a curve (components F through
// J), plus the small integer/byte conversion utilities they share
// (component K).
//
// Grounded on original_source/ecc/{ECPrivateKey,ECPublicKey,ECKeypair,
// PrivKeyOps,Tools}.py.
package key

import "math/big"

// BytesToIntBE interprets data as a big-endian unsigned integer, grounded
// on Tools.bytestoint (big-endian branch). Used by ECDSA, which always
// treats digests and coordinates as big-endian per spec.md §6.
func BytesToIntBE(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// BytesToIntLE interprets data as a little-endian unsigned integer,
// grounded on Tools.bytestoint (little-endian branch). EdDSA's seed
// hashes, nonces and point encodings are all little-endian per spec.md
// §4.7.
func BytesToIntLE(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// IntToBytesLE serializes v into length bytes, little-endian, grounded on
// Tools.inttobytes (little-endian branch). Used to encode the `s` half of
// an EdDSA signature.
func IntToBytesLE(v *big.Int, length int) []byte {
	buf := make([]byte, length)
	be := v.Bytes()
	for i, b := range be {
		pos := len(be) - 1 - i
		if pos < length {
			buf[pos] = b
		}
	}
	return buf
}

// ECDSAMsgDigestToInt converts a message digest to the integer `e` that
// ECDSA sign/verify operate on: big-endian interpretation, right-shifted
// when the digest is wider than n, per spec.md §4.4 step 1 and §6 ("Hash
// integer conversion"). Grounded on Tools.ecdsa_msgdigest_to_int.
func ECDSAMsgDigestToInt(digest []byte, n *big.Int) *big.Int {
	e := BytesToIntBE(digest)
	digestBits := 8 * len(digest)
	nBits := n.BitLen()
	if digestBits > nBits {
		e = new(big.Int).Rsh(e, uint(digestBits-nBits))
	}
	return e
}
