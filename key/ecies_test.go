package key

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johndoe31415/ecctoolkit/rand"
	"github.com/johndoe31415/ecctoolkit/registry"
)

// TestECIESEncryptDecryptRoundTrip checks the universal law
// decrypt(encrypt(Q).R) == encrypt(Q).S.
func TestECIESEncryptDecryptRoundTrip(t *testing.T) {
	c, err := registry.GetCurveByName("secp256k1")
	require.NoError(t, err)
	src := rand.New()

	priv, err := Generate(c, src)
	require.NoError(t, err)

	ct, err := priv.Public().Encrypt(src)
	require.NoError(t, err)
	require.False(t, ct.R.IsNeutral())
	require.False(t, ct.S.IsNeutral())

	shared, err := priv.Decrypt(ct.R)
	require.NoError(t, err)
	require.True(t, shared.Equal(ct.S))
}
