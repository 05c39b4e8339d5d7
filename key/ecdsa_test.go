package key

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johndoe31415/ecctoolkit/registry"
)

// TestECDSASignVerifyRoundTrip checks the universal correctness /
// soundness laws from spec.md §8.
func TestECDSASignVerifyRoundTrip(t *testing.T) {
	c, err := registry.GetCurveByName("secp112r1")
	require.NoError(t, err)
	priv, err := New(big.NewInt(0xdeadbeef), c)
	require.NoError(t, err)

	sig, err := priv.ECDSASignHash([]byte("some digest bytes"), "sha1", big.NewInt(12345), nil)
	require.NoError(t, err)

	ok, err := priv.Public().ECDSAVerifyHash([]byte("some digest bytes"), sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = priv.Public().ECDSAVerifyHash([]byte("a different digest"), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestECDSASecp112r1Vector is spec.md §8 scenario 3.
func TestECDSASecp112r1Vector(t *testing.T) {
	c, err := registry.GetCurveByName("secp112r1")
	require.NoError(t, err)

	priv, err := New(big.NewInt(0xdeadbeef), c)
	require.NoError(t, err)

	require.Equal(t, "3029259716094196738484362740763961", priv.Public().Point().X().Int().String())
	require.Equal(t, "2918181739692718713384134377830669", priv.Public().Point().Y().Int().String())

	digest, err := digestByName("sha1", []byte("foobar"))
	require.NoError(t, err)
	sig, err := priv.ECDSASignHash(digest, "sha1", big.NewInt(12345), nil)
	require.NoError(t, err)
	require.Equal(t, "1696427335541514286367855701829018", sig.R.String())
	require.Equal(t, "1960761230049936699759766101723490", sig.S.String())

	ok, err := priv.Public().ECDSAVerify([]byte("foobar"), sig)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestExploitReusedNonceOnSecp192k1 is spec.md §8 scenario 6: recovering
// the private key from two signatures sharing a nonce.
func TestExploitReusedNonceOnSecp192k1(t *testing.T) {
	c, err := registry.GetCurveByName("secp192k1")
	require.NoError(t, err)

	k := big.NewInt(424242)
	d := big.NewInt(99999999)
	priv, err := New(d, c)
	require.NoError(t, err)

	digest1 := []byte("message one")
	digest2 := []byte("message two")

	sig1, err := priv.ECDSASignHash(digest1, "sha256", k, nil)
	require.NoError(t, err)
	sig2, err := priv.ECDSASignHash(digest2, "sha256", k, nil)
	require.NoError(t, err)
	require.Equal(t, sig1.R, sig2.R, "reused nonce must produce equal r")

	recoveredK, recoveredD, err := ExploitReusedNonce(c, digest1, sig1, digest2, sig2)
	require.NoError(t, err)
	require.Equal(t, 0, k.Cmp(recoveredK))
	require.Equal(t, 0, d.Cmp(recoveredD))
}
