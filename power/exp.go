package power

import (
	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/series"
)

// Exp computes e^x under ctx via the Taylor series Σ xⁿ/n!, range-reduced
// so the series always sees a small argument.
func Exp(x dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	r, err := exp(x, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// exp evaluates e^x at the working precision of ctx. For |x| > ln2/2 it
// writes x = k·ln2 + r with k = round(x/ln2) and recurses as 2^k · e^r;
// the reduced argument then satisfies |r| <= ln2/2, where the Taylor
// series converges in a handful of terms per digit.
func exp(x dec.Value, ctx dec.Context) (dec.Value, error) {
	if x.IsZero() {
		return dec.One, nil
	}
	ln2, err := logTwo(ctx)
	if err != nil {
		return dec.Value{}, err
	}
	if x.Abs().Cmp(ln2.Mul(dec.Half, ctx)) > 0 {
		q, err := x.Div(ln2, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		k := q.RoundToInt(ctx)
		r := x.Sub(k.Mul(ln2, ctx), ctx)
		scale, err := IntegerPow(dec.Two, k, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		er, err := exp(r, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return scale.Mul(er, ctx), nil
	}
	return expSeries(x, ctx)
}

// expSeries sums Σ xⁿ/n! to convergence under ctx.
func expSeries(x dec.Value, ctx dec.Context) (dec.Value, error) {
	fact, err := series.NewFactorialSupplier(dec.Zero, ctx)
	if err != nil {
		return dec.Value{}, err
	}
	sum := series.New(func(n dec.Value) (dec.Value, error) {
		num, err := IntegerPow(x, n, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return num.Div(fact.NextPre(), ctx)
	})
	return sum.SumInfinite(0, ctx)
}

// logTwo evaluates ln 2 by the convergent series Σ 2/(3(2k+1)·9^k). It is
// recomputed on every call rather than cached, keeping results a pure
// function of the supplied context.
func logTwo(ctx dec.Context) (dec.Value, error) {
	three := dec.FromInt64(3)
	nine := dec.FromInt64(9)
	sum := series.New(func(k dec.Value) (dec.Value, error) {
		odd := dec.Two.Mul(k, ctx).Add(dec.One, ctx)
		pow9, err := IntegerPow(nine, k, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return dec.Two.Div(three.Mul(odd, ctx).Mul(pow9, ctx), ctx)
	})
	return sum.SumInfinite(0, ctx)
}
