package nroot

import (
	"errors"

	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/power"
)

// ErrUndefined indicates a radicand/degree combination with no real root,
// such as an even root of a negative radicand.
var ErrUndefined = errors.New("nroot: root undefined for the given radicand and degree")

// guardDigits is the working-precision surplus Root evaluates under before
// rounding into the caller's context.
const guardDigits = 10

// Root computes the degree-th root of radicand under ctx. See the package
// documentation for the sign/parity dispatch table.
func Root(radicand, degree dec.Value, ctx dec.Context) (dec.Value, error) {
	if radicand.IsZero() && degree.IsPositive() {
		return dec.Zero, nil
	}
	wctx := ctx.WithGuard(guardDigits)
	if degree.IsInteger() {
		switch {
		case radicand.IsPositive() && degree.IsPositive():
			r, err := integerRoot(radicand, degree, wctx)
			if err != nil {
				return dec.Value{}, err
			}
			return r.Round(ctx), nil

		case radicand.IsPositive() && degree.IsNegative():
			r, err := integerRoot(radicand, degree.Neg(), wctx)
			if err != nil {
				return dec.Value{}, err
			}
			rec, err := r.Reciprocal(wctx)
			if err != nil {
				return dec.Value{}, err
			}
			return rec.Round(ctx), nil

		case radicand.IsNegative():
			odd, err := degree.IsOdd()
			if err != nil {
				return dec.Value{}, err
			}
			if odd && degree.IsPositive() {
				r, err := integerRoot(radicand.Abs(), degree, wctx)
				if err != nil {
					return dec.Value{}, err
				}
				return r.Neg().Round(ctx), nil
			}
		}
		return dec.Value{}, ErrUndefined
	}
	if radicand.IsPositive() {
		inv, err := degree.Reciprocal(wctx)
		if err != nil {
			return dec.Value{}, err
		}
		r, err := power.Pow(radicand, inv, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return r.Round(ctx), nil
	}
	return dec.Value{}, ErrUndefined
}

// integerRoot runs Halley's method for a positive radicand and positive
// integer degree. Convergence is detected purely by a guess equalling its
// predecessor under ctx; no oscillation cache is needed because the
// iteration is contractive on positive input.
func integerRoot(radicand, degree dec.Value, ctx dec.Context) (dec.Value, error) {
	nm1 := degree.Sub(dec.One, ctx)
	np1 := degree.Add(dec.One, ctx)
	result := dec.One
	for {
		rn, err := power.IntegerPow(result, degree, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		num := nm1.Mul(rn, ctx).Add(np1.Mul(radicand, ctx), ctx)
		den := np1.Mul(rn, ctx).Add(nm1.Mul(radicand, ctx), ctx)
		frac, err := num.Div(den, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		guess := result.Mul(frac, ctx)
		if guess.Equals(result) {
			return result, nil
		}
		result = guess
	}
}
