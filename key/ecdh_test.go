package key

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johndoe31415/ecctoolkit/rand"
	"github.com/johndoe31415/ecctoolkit/registry"
)

// TestECDHSharedSecretAgreement checks that both parties derive the same
// shared point, grounded on PrivKeyOps.PrivKeyOpECDH.
func TestECDHSharedSecretAgreement(t *testing.T) {
	c, err := registry.GetCurveByName("NIST P-256")
	require.NoError(t, err)
	src := rand.New()

	alice, err := Generate(c, src)
	require.NoError(t, err)
	bob, err := Generate(c, src)
	require.NoError(t, err)

	sharedAlice, err := alice.ECDHCompute(bob.Public())
	require.NoError(t, err)
	sharedBob, err := bob.ECDHCompute(alice.Public())
	require.NoError(t, err)

	require.True(t, sharedAlice.Equal(sharedBob))
	require.False(t, sharedAlice.IsNeutral())
}
