package key

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johndoe31415/ecctoolkit/eccerr"
	"github.com/johndoe31415/ecctoolkit/rand"
	"github.com/johndoe31415/ecctoolkit/registry"
)

func TestNewRejectsOutOfRangeScalar(t *testing.T) {
	c, err := registry.GetCurveByName("secp256k1")
	require.NoError(t, err)

	_, err = New(big.NewInt(0), c)
	require.ErrorIs(t, err, eccerr.ErrValueOutOfRange)

	_, err = New(c.N(), c)
	require.ErrorIs(t, err, eccerr.ErrValueOutOfRange)
}

func TestGenerateProducesValidKeyPair(t *testing.T) {
	c, err := registry.GetCurveByName("secp256k1")
	require.NoError(t, err)
	priv, err := Generate(c, rand.New())
	require.NoError(t, err)

	ok, err := c.OnCurve(priv.Public().Point())
	require.NoError(t, err)
	require.True(t, ok)

	expected, err := c.G().Mul(priv.Scalar())
	require.NoError(t, err)
	require.True(t, expected.Equal(priv.Public().Point()))
}
