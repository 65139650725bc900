package power_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/decmath/dec"
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

// TestIntegerPow_Basics pins exact small powers.
func TestIntegerPow_Basics(t *testing.T) {
	ctx := dec.NewContext(20)

	v, err := power.IntegerPow(dec.Two, dec.FromInt64(10), ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(1024)))

	v, err = power.IntegerPow(dec.MustParse("-3"), dec.FromInt64(3), ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.FromInt64(-27)))

	v, err = power.IntegerPow(dec.MustParse("1.5"), dec.Two, ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.MustParse("2.25")))
}

// TestIntegerPow_Conventions pins the exponent-zero and degenerate-base
// rules: x^0 = 1 for every base including zero, 0^positive = 0, and the
// (-1)^n parity alternation.
func TestIntegerPow_Conventions(t *testing.T) {
	ctx := dec.NewContext(20)

	for _, base := range []dec.Value{dec.Zero, dec.Two, dec.NegOne, dec.MustParse("1.5")} {
		v, err := power.IntegerPow(base, dec.Zero, ctx)
		require.NoError(t, err)
		assert.True(t, v.Equals(dec.One), "base %s to the zero", base)
	}

	v, err := power.IntegerPow(dec.Zero, dec.FromInt64(5), ctx)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = power.IntegerPow(dec.NegOne, dec.FromInt64(6), ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.One))

	v, err = power.IntegerPow(dec.NegOne, dec.FromInt64(7), ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.NegOne))
}

// TestIntegerPow_NegativeExponent checks the reciprocal rule and the zero
// base failure under it.
func TestIntegerPow_NegativeExponent(t *testing.T) {
	ctx := dec.NewContext(20)

	v, err := power.IntegerPow(dec.Two, dec.FromInt64(-2), ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.MustParse("0.25")))

	_, err = power.IntegerPow(dec.Zero, dec.FromInt64(-2), ctx)
	assert.ErrorIs(t, err, dec.ErrDivisionByZero)
}

// TestIntegerPow_FractionalExponent verifies the integer-only contract.
func TestIntegerPow_FractionalExponent(t *testing.T) {
	ctx := dec.NewContext(10)
	_, err := power.IntegerPow(dec.Two, dec.Half, ctx)
	assert.ErrorIs(t, err, power.ErrUndefined)
}

// TestIntegerPow_BeyondNativeRange drives the square-and-multiply path
// with an exponent past the machine-integer limit. The base sits close
// enough to 1 that (1+1e-20)^(2^63) ≈ e^0.092 stays small, and the
// identity (x^2)^(e/2) = x^e pins it against a second evaluation. The 63
// squarings cost roughly a digit of accuracy each, hence the wide working
// precision and the looser comparison.
func TestIntegerPow_BeyondNativeRange(t *testing.T) {
	ctx := dec.NewContext(50)
	base := dec.MustParse("1.00000000000000000001")
	huge := dec.MaxNative.Add(dec.One, ctx) // 2^63, exact at 50 digits

	direct, err := power.IntegerPow(base, huge, ctx)
	require.NoError(t, err)

	squared := base.Mul(base, ctx)
	half, err := huge.ShiftRight(1)
	require.NoError(t, err)
	viaSquare, err := power.IntegerPow(squared, half, ctx)
	require.NoError(t, err)

	assertWithin(t, viaSquare, direct, ctx.WithPrecision(25))
}

// TestPow_NonIntegerExponent compares 2^0.5 against √2 and 10^2.5 against
// its closed form.
func TestPow_NonIntegerExponent(t *testing.T) {
	ctx := dec.NewContext(30)

	got, err := power.Pow(dec.Two, dec.Half, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("1.41421356237309504880168872421"), got, ctx)

	got, err = power.Pow(dec.FromInt64(10), dec.MustParse("2.5"), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("316.227766016837933199889354443"), got, ctx)
}

// TestPow_UnitBase verifies 1^y = 1 exactly for non-integer exponents,
// where the computation runs through exp(y·ln 1).
func TestPow_UnitBase(t *testing.T) {
	ctx := dec.NewContext(20)
	for _, s := range []string{"0.5", "-2.5", "1000000.5"} {
		v, err := power.Pow(dec.One, dec.MustParse(s), ctx)
		require.NoError(t, err, "1^%s", s)
		assert.True(t, v.Equals(dec.One), "1^%s = %s", s, v)
	}
}

// TestPow_DomainRules covers the non-integer-exponent edge cases: zero
// base with positive exponent, and the undefined combinations.
func TestPow_DomainRules(t *testing.T) {
	ctx := dec.NewContext(15)

	v, err := power.Pow(dec.Zero, dec.Half, ctx)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = power.Pow(dec.MustParse("-2"), dec.Half, ctx)
	assert.ErrorIs(t, err, power.ErrUndefined)

	_, err = power.Pow(dec.Zero, dec.MustParse("-0.5"), ctx)
	assert.ErrorIs(t, err, power.ErrUndefined)
}

// TestExp_ReferenceValues compares e^1 and e^10 against references, plus
// the exact e^0 = 1.
func TestExp_ReferenceValues(t *testing.T) {
	ctx := dec.NewContext(30)

	v, err := power.Exp(dec.Zero, ctx)
	require.NoError(t, err)
	assert.True(t, v.Equals(dec.One))

	v, err = power.Exp(dec.One, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("2.71828182845904523536028747135"), v, ctx)

	v, err = power.Exp(dec.FromInt64(10), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("22026.4657948067165169579006452"), v, ctx)

	v, err = power.Exp(dec.NegOne, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("0.367879441171442321595523770161"), v, ctx)
}

// TestLn_ReferenceValues compares ln at a few anchors, including the exact
// ln(1) = 0.
func TestLn_ReferenceValues(t *testing.T) {
	ctx := dec.NewContext(30)

	v, err := power.Ln(dec.One, ctx)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = power.Ln(dec.Two, ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("0.693147180559945309417232121458"), v, ctx)

	v, err = power.Ln(dec.FromInt64(10), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("2.30258509299404568401799145468"), v, ctx)

	v, err = power.Ln(dec.MustParse("0.1"), ctx)
	require.NoError(t, err)
	assertWithin(t, dec.MustParse("-2.30258509299404568401799145468"), v, ctx)
}

// TestLn_NonPositive verifies the domain sentinel.
func TestLn_NonPositive(t *testing.T) {
	ctx := dec.NewContext(10)

	_, err := power.Ln(dec.Zero, ctx)
	assert.ErrorIs(t, err, power.ErrNonPositiveLog)

	_, err = power.Ln(dec.NegOne, ctx)
	assert.ErrorIs(t, err, power.ErrNonPositiveLog)
}

// TestExpLn_RoundTrip checks exp(ln(x)) ≈ x across magnitudes.
func TestExpLn_RoundTrip(t *testing.T) {
	ctx := dec.NewContext(25)
	for _, s := range []string{"0.001", "0.5", "3", "123.456", "1e10"} {
		x := dec.MustParse(s)
		lnX, err := power.Ln(x, ctx)
		require.NoError(t, err, "ln(%s)", s)
		back, err := power.Exp(lnX, ctx)
		require.NoError(t, err, "exp(ln(%s))", s)
		assertWithin(t, x, back, ctx.WithPrecision(20))
	}
}
