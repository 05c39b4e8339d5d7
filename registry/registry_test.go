package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johndoe31415/ecctoolkit/curve"
)

func TestDefaultCatalogMaterialisesKnownCurves(t *testing.T) {
	names := []string{"secp256k1", "NIST P-256", "ed25519", "curve25519", "Ed448-Goldilocks", "ed448", "brainpoolP256r1"}
	for _, name := range names {
		c, err := GetCurveByName(name)
		require.NoError(t, err, name)
		require.True(t, c.HasGenerator(), name)
	}
}

// TestEd448AndGoldilocksShareFieldButNotGenerator guards against aliasing
// "ed448"'s generator to the Goldilocks Gy=19 convention: same field,
// curve coefficients, order and cofactor, but a distinct base point, per
// toyecc/tests/Ed448BasicTests.py's same-seed-different-pubkey vectors.
func TestEd448AndGoldilocksShareFieldButNotGenerator(t *testing.T) {
	goldilocks, err := GetCurveByName("Ed448-Goldilocks")
	require.NoError(t, err)
	ed448, err := GetCurveByName("ed448")
	require.NoError(t, err)

	require.Equal(t, goldilocks.P(), ed448.P())
	require.Equal(t, goldilocks.N(), ed448.N())
	require.Equal(t, goldilocks.H(), ed448.H())
	require.False(t, goldilocks.G().Equal(ed448.G()), "Ed448 must not reuse the Goldilocks generator")
}

func TestAliasAndCaseInsensitiveLookup(t *testing.T) {
	c1, err := GetCurveByName("Ed448-Goldilocks")
	require.NoError(t, err)
	c2, err := GetCurveByName("ed448-goldilocks")
	require.NoError(t, err)
	require.True(t, c1 == c2, "lowercase alias should resolve to the same cached curve")

	ed448Hash, err := Default.EdDSAHashFor("ed448")
	require.NoError(t, err)
	require.Equal(t, HashSHAKE256, ed448Hash)

	goldilocksHash, err := Default.EdDSAHashFor("Ed448-Goldilocks")
	require.NoError(t, err)
	require.Equal(t, HashSHA512, goldilocksHash)
}

func TestUnknownNameReturnsError(t *testing.T) {
	_, err := GetCurveByName("does-not-exist")
	require.Error(t, err)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	reg := New()
	construct := func() (*curve.Curve, error) {
		return curve.NewShortWeierstrass(
			mustBig("0"), mustBig("7"),
			mustBig("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
			mustBig("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
			mustBig("1"),
			mustBig("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
			mustBig("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
			"dup",
		)
	}
	require.NoError(t, reg.RegisterLazy("dup", nil, HashNone, construct))
	err := reg.RegisterLazy("dup", nil, HashNone, construct)
	require.Error(t, err)
}

func TestNamesListsSortedCanonicalNames(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterLazy("zeta", nil, HashNone, nil))
	require.NoError(t, reg.RegisterLazy("alpha", nil, HashNone, nil))
	require.Equal(t, []string{"alpha", "zeta"}, reg.Names())
}

func TestExportImportRoundTrip(t *testing.T) {
	c, err := GetCurveByName("secp256k1")
	require.NoError(t, err)
	data, err := ExportParams(c)
	require.NoError(t, err)
	c2, err := ImportParams(data)
	require.NoError(t, err)
	require.Equal(t, c.P(), c2.P())
	require.Equal(t, c.N(), c2.N())
	require.True(t, c2.HasGenerator())

	g2, err := c2.G().Mul(c2.N())
	require.NoError(t, err)
	require.True(t, g2.IsNeutral())
}
