package nroot_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/nroot"
	"github.com/katalvlaran/decmath/power"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertWithin fails unless got is within a few ulps of want at the
// context precision, scaled by the magnitude of want.
func assertWithin(t *testing.T, want, got dec.Value, ctx dec.Context) {
	t.Helper()
	tol := dec.MustParse("1e-" + strconv.Itoa(int(ctx.Precision())-2))
	if want.Abs().Cmp(dec.One) > 0 {
		tol = tol.Mul(want.Abs(), ctx)
	}
	diff := got.Sub(want, ctx.WithGuard(5)).Abs()
	assert.True(t, diff.Cmp(tol) <= 0, "want %s, got %s (diff %s)", want, got, diff)
}

// TestRoot_SquareRoot pins √2 against the 30-digit reference.
func TestRoot_SquareRoot(t *testing.T) {
	ctx := dec.NewContext(30)
	got, err := nroot.Root(dec.Two, dec.Two, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("1.41421356237309504880168872421"), got, ctx)
}

// TestRoot_ExactCubes checks cube roots of perfect cubes, both signs.
func TestRoot_ExactCubes(t *testing.T) {
	ctx := dec.NewContext(25)
	three := dec.FromInt64(3)

	got, err := nroot.Root(dec.FromInt64(27), three, ctx)
	require.NoError(t, err)
	assertWithin(t, three, got, ctx)

	got, err = nroot.Root(dec.FromInt64(-8), three, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.FromInt64(-2), got, ctx)
}

// TestRoot_ZeroRadicand verifies 0^(1/n) = 0 for positive degrees.
func TestRoot_ZeroRadicand(t *testing.T) {
	ctx := dec.NewContext(10)

	got, err := nroot.Root(dec.Zero, dec.FromInt64(3), ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = nroot.Root(dec.Zero, dec.MustParse("2.5"), ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// TestRoot_NegativeDegree checks the reciprocal rule: the (−n)-th root of
// x is 1 over the n-th root.
func TestRoot_NegativeDegree(t *testing.T) {
	ctx := dec.NewContext(25)

	got, err := nroot.Root(dec.FromInt64(4), dec.FromInt64(-2), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.Half, got, ctx)
}

// TestRoot_FractionalDegree routes through the exponential path: the
// 2.5-th root of 32 is 4 (32^(1/2.5) = 2^2).
func TestRoot_FractionalDegree(t *testing.T) {
	ctx := dec.NewContext(25)

	got, err := nroot.Root(dec.FromInt64(32), dec.MustParse("2.5"), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.FromInt64(4), got, ctx)
}

// TestRoot_Undefined covers the no-real-result combinations: even or
// fractional roots of a negative radicand, and a zero degree.
func TestRoot_Undefined(t *testing.T) {
	ctx := dec.NewContext(10)

	_, err := nroot.Root(dec.FromInt64(-4), dec.Two, ctx)
	assert.ErrorIs(t, err, nroot.ErrUndefined)

	_, err = nroot.Root(dec.FromInt64(-4), dec.MustParse("2.5"), ctx)
	assert.ErrorIs(t, err, nroot.ErrUndefined)

	_, err = nroot.Root(dec.Two, dec.Zero, ctx)
	assert.ErrorIs(t, err, nroot.ErrUndefined)
}

// TestRoot_PowRoundTrip checks root(x^n, n) ≈ x across a few bases and
// degrees.
func TestRoot_PowRoundTrip(t *testing.T) {
	ctx := dec.NewContext(25)
	for _, tc := range []struct{ base, degree string }{
		{"2", "2"},
		{"1.5", "3"},
		{"10", "5"},
		{"0.7", "4"},
	} {
		x := dec.MustParse(tc.base)
		n := dec.MustParse(tc.degree)

		xn, err := power.IntegerPow(x, n, ctx)
		require.NoError(t, err)
		back, err := nroot.Root(xn, n, ctx)
		require.NoError(t, err)
		assertWithin(t, x, back, ctx.WithPrecision(20))
	}
}
