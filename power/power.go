package power

import (
	"errors"

	"github.com/katalvlaran/decmath/dec"
)

// Sentinel errors for exponentiation.
var (
	// ErrNonPositiveLog indicates Ln of zero or a negative value.
	ErrNonPositiveLog = errors.New("power: logarithm of non-positive value")

	// ErrUndefined indicates a base/exponent combination with no real
	// result, such as a negative base with a non-integer exponent.
	ErrUndefined = errors.New("power: result undefined for the given base and exponent")
)

// guardDigits is the working-precision surplus the exported entry points
// evaluate under before rounding into the caller's context.
const guardDigits = 10

// Pow computes base^exponent under ctx.
//
// Integer exponents go to IntegerPow (so 0^0 == 1 numerically and a
// negative exponent means the reciprocal of the positive power). For
// non-integer exponents: 0^positive is 0, any non-positive base is
// undefined (a negative base has no real non-integer power), and a
// positive base yields exp(exponent · ln(base)).
func Pow(base, exponent dec.Value, ctx dec.Context) (dec.Value, error) {
	if exponent.IsInteger() {
		return IntegerPow(base, exponent, ctx)
	}
	if base.IsZero() && exponent.IsPositive() {
		return dec.Zero, nil
	}
	if !base.IsPositive() {
		return dec.Value{}, ErrUndefined
	}
	wctx := ctx.WithGuard(guardDigits)
	lnBase, err := ln(base, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	r, err := exp(exponent.Mul(lnBase, wctx), wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// IntegerPow computes base^exponent for an integer exponent under ctx.
// Exponent 0 yields 1 for every base (the 0^0 = 1 convention); a negative
// exponent yields the reciprocal of the positive power, so 0 raised to a
// negative power surfaces dec.ErrDivisionByZero. Returns ErrUndefined for
// a fractional exponent.
func IntegerPow(base, exponent dec.Value, ctx dec.Context) (dec.Value, error) {
	if !exponent.IsInteger() {
		return dec.Value{}, ErrUndefined
	}
	if exponent.IsZero() {
		return dec.One, nil
	}
	if exponent.IsNegative() {
		r, err := IntegerPow(base, exponent.Neg(), ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return r.Reciprocal(ctx)
	}
	// Degenerate bases need no arithmetic at all.
	switch {
	case base.IsZero():
		return dec.Zero, nil
	case base.Equals(dec.One):
		return dec.One, nil
	case base.Equals(dec.NegOne):
		even, err := exponent.IsEven()
		if err != nil {
			return dec.Value{}, err
		}
		if even {
			return dec.One, nil
		}
		return dec.NegOne, nil
	}
	// The native power operation accepts machine-integer exponents only.
	if exponent.Cmp(dec.MaxNative) <= 0 {
		return base.NativePow(exponent, ctx)
	}
	return squareAndMultiply(base, exponent, ctx)
}

// squareAndMultiply evaluates base^exponent for exponents beyond the
// native machine-integer range: test the low bit, square the base, shift
// the exponent right, until the exponent is exhausted.
func squareAndMultiply(base, exponent dec.Value, ctx dec.Context) (dec.Value, error) {
	result := dec.One
	for !exponent.IsZero() {
		odd, err := exponent.IsOdd()
		if err != nil {
			return dec.Value{}, err
		}
		if odd {
			result = result.Mul(base, ctx)
		}
		base = base.Mul(base, ctx)
		exponent, err = exponent.ShiftRight(1)
		if err != nil {
			return dec.Value{}, err
		}
	}
	return result, nil
}
