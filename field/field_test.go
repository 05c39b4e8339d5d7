package field_test

import (
	"math/big"
	"testing"

	"github.com/johndoe31415/ecctoolkit/field"
	"github.com/stretchr/testify/require"
)

func mod(p int64) *field.Modulus {
	return field.NewModulus(big.NewInt(p))
}

func TestArithmetic(t *testing.T) {
	m := mod(23)
	a := field.FromInt64(17, m)
	b := field.FromInt64(9, m)

	require.True(t, a.Add(b).Equal(field.FromInt64(3, m)))
	require.True(t, a.Sub(b).Equal(field.FromInt64(8, m)))
	require.True(t, a.Mul(b).Equal(field.FromInt64(15, m)))
}

func TestInverseAndDivisionByZero(t *testing.T) {
	m := mod(23)
	a := field.FromInt64(5, m)
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(field.FromInt64(1, m)))

	zero := field.FromInt64(0, m)
	_, err = zero.Inverse()
	require.Error(t, err)
}

func TestFermatLittleTheorem(t *testing.T) {
	m := mod(104729) // prime
	for _, v := range []int64{1, 2, 3, 12345, 104728} {
		a := field.FromInt64(v, m)
		r := a.ExpInt64(104728)
		require.True(t, r.Equal(field.FromInt64(1, m)), "a=%d", v)
	}
}

func TestSqrt(t *testing.T) {
	// 23 ≡ 3 (mod 4); 4 is a QR with roots 2 and 21.
	m := mod(23)
	four := field.FromInt64(4, m)
	r1, r2, ok := four.Sqrt()
	require.True(t, ok)
	require.True(t, r1.Mul(r1).Equal(four))
	require.True(t, r2.Mul(r2).Equal(four))

	// 5 is not a QR mod 23.
	five := field.FromInt64(5, m)
	_, _, ok = five.Sqrt()
	require.False(t, ok)
}

func TestIsQR(t *testing.T) {
	m := mod(23)
	require.True(t, field.FromInt64(4, m).IsQR())
	require.False(t, field.FromInt64(5, m).IsQR())
}

func TestSqrt4(t *testing.T) {
	m := mod(23)
	// 16 = 2^4, so its fourth root is 2 (or another valid root).
	sixteen := field.FromInt64(16, m)
	r, ok := sixteen.Sqrt4()
	require.True(t, ok)
	require.True(t, r.ExpInt64(4).Equal(sixteen))
}
