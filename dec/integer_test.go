package dec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/decmath/dec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsInteger_ScaleInsensitive verifies that integrality looks through
// trailing-zero scale.
func TestIsInteger_ScaleInsensitive(t *testing.T) {
	assert.True(t, dec.MustParse("1.00").IsInteger())
	assert.True(t, dec.MustParse("-42").IsInteger())
	assert.True(t, dec.MustParse("1e3").IsInteger())
	assert.False(t, dec.MustParse("1.5").IsInteger())
	assert.False(t, dec.MustParse("0.001").IsInteger())
}

// TestRequireInteger_Sentinel checks the guard used by the integer-only
// operations.
func TestRequireInteger_Sentinel(t *testing.T) {
	v, err := dec.RequireInteger(dec.MustParse("7.0"))
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(7)))

	_, err = dec.RequireInteger(dec.MustParse("7.5"))
	assert.ErrorIs(t, err, dec.ErrNotInteger)
}

// TestParity covers IsEven/IsOdd on integers and the error on fractions.
func TestParity(t *testing.T) {
	even, err := dec.MustParse("10").IsEven()
	require.NoError(t, err)
	assert.True(t, even)

	odd, err := dec.MustParse("-3").IsOdd()
	require.NoError(t, err)
	assert.True(t, odd)

	even, err = dec.Zero.IsEven()
	require.NoError(t, err)
	assert.True(t, even)

	_, err = dec.MustParse("2.5").IsEven()
	assert.ErrorIs(t, err, dec.ErrNotInteger)
	_, err = dec.MustParse("2.5").IsOdd()
	assert.ErrorIs(t, err, dec.ErrNotInteger)
}

// TestInt64_RangeAndFraction verifies exact extraction plus both failure
// modes.
func TestInt64_RangeAndFraction(t *testing.T) {
	n, err := dec.MustParse("-42.00").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	n, err = dec.FromInt64(math.MaxInt64).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), n)

	_, err = dec.MustParse("1.5").Int64()
	assert.ErrorIs(t, err, dec.ErrNotInteger)

	_, err = dec.MustParse("9223372036854775808").Int64() // MaxInt64 + 1
	assert.ErrorIs(t, err, dec.ErrRange)
}

// TestShifts covers the power-of-two shifts on integers.
func TestShifts(t *testing.T) {
	v, err := dec.FromInt64(3).ShiftLeft(4)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(48)))

	v, err = dec.FromInt64(-48).ShiftRight(4)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(-3)))

	_, err = dec.MustParse("1.5").ShiftLeft(1)
	assert.ErrorIs(t, err, dec.ErrNotInteger)
}

// TestBitwise covers And/Or/Xor/Not in two's-complement semantics.
func TestBitwise(t *testing.T) {
	six, three := dec.FromInt64(6), dec.FromInt64(3)

	v, err := six.And(three)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.Two))

	v, err = six.Or(three)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(7)))

	v, err = six.Xor(three)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(5)))

	v, err = dec.Zero.Not()
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.NegOne))

	_, err = dec.MustParse("0.5").And(three)
	assert.ErrorIs(t, err, dec.ErrNotInteger)
}
