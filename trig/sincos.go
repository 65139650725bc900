package trig

import (
	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/power"
	"github.com/katalvlaran/decmath/series"
)

// Sin computes the sine of angle (radians) under ctx.
func Sin(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	r, q, err := reduce(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	// sin(r + q·π/2) by quadrant: direct, swap, negate, swap-and-negate.
	var v dec.Value
	switch q {
	case 0:
		v, err = sinSeries(r, wctx)
	case 1:
		v, err = cosSeries(r, wctx)
	case 2:
		if v, err = sinSeries(r, wctx); err == nil {
			v = v.Neg()
		}
	default:
		if v, err = cosSeries(r, wctx); err == nil {
			v = v.Neg()
		}
	}
	if err != nil {
		return dec.Value{}, err
	}
	return v.Round(ctx), nil
}

// Cos computes the cosine of angle (radians) under ctx.
func Cos(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	r, q, err := reduce(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	// cos(r + q·π/2) by quadrant.
	var v dec.Value
	switch q {
	case 0:
		v, err = cosSeries(r, wctx)
	case 1:
		if v, err = sinSeries(r, wctx); err == nil {
			v = v.Neg()
		}
	case 2:
		if v, err = cosSeries(r, wctx); err == nil {
			v = v.Neg()
		}
	default:
		v, err = sinSeries(r, wctx)
	}
	if err != nil {
		return dec.Value{}, err
	}
	return v.Round(ctx), nil
}

// reduce maps angle into [−π/4, π/4] by subtracting the nearest multiple
// of π/2 and reports the quadrant n mod 4. The subtraction cancels one
// digit per digit of n, so the residue is computed with the guard raised
// by the width of n.
func reduce(angle dec.Value, ctx dec.Context) (dec.Value, int64, error) {
	hp, err := halfPi(ctx)
	if err != nil {
		return dec.Value{}, 0, err
	}
	q, err := angle.Div(hp, ctx)
	if err != nil {
		return dec.Value{}, 0, err
	}
	n := q.RoundToInt(ctx)
	if n.IsZero() {
		return angle, 0, nil
	}
	rctx := ctx.WithGuard(uint32(n.NumDigits()))
	hp, err = halfPi(rctx)
	if err != nil {
		return dec.Value{}, 0, err
	}
	r := angle.Sub(n.Mul(hp, rctx), rctx).Round(ctx)

	rem, err := n.Rem(four, ctx)
	if err != nil {
		return dec.Value{}, 0, err
	}
	quadrant, err := rem.Int64()
	if err != nil {
		return dec.Value{}, 0, err
	}
	return r, ((quadrant % 4) + 4) % 4, nil
}

// sinSeries sums the Maclaurin expansion Σ (−1)ⁿ x^(2n+1)/(2n+1)! to
// convergence. The factorial supplier starts at 1! and advances two steps
// per term, yielding the (2n+1)! denominators.
func sinSeries(x dec.Value, ctx dec.Context) (dec.Value, error) {
	fact, err := series.NewFactorialSupplier(dec.One, ctx)
	if err != nil {
		return dec.Value{}, err
	}
	sum := series.New(func(n dec.Value) (dec.Value, error) {
		sign, err := power.IntegerPow(dec.NegOne, n, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		odd := dec.Two.Mul(n, ctx).Add(dec.One, ctx)
		xp, err := power.IntegerPow(x, odd, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return xp.Mul(sign, ctx).Div(fact.NextPreN(2), ctx)
	})
	return sum.SumInfinite(0, ctx)
}

// cosSeries sums Σ (−1)ⁿ x^(2n)/(2n)! to convergence; the supplier starts
// at 0! and advances two steps per term for the (2n)! denominators.
func cosSeries(x dec.Value, ctx dec.Context) (dec.Value, error) {
	fact, err := series.NewFactorialSupplier(dec.Zero, ctx)
	if err != nil {
		return dec.Value{}, err
	}
	sum := series.New(func(n dec.Value) (dec.Value, error) {
		sign, err := power.IntegerPow(dec.NegOne, n, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		even := dec.Two.Mul(n, ctx)
		xp, err := power.IntegerPow(x, even, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return xp.Mul(sign, ctx).Div(fact.NextPreN(2), ctx)
	})
	return sum.SumInfinite(0, ctx)
}
