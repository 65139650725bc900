package power

import (
	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/series"
)

// Ln computes the natural logarithm of x under ctx. Returns
// ErrNonPositiveLog when x <= 0.
func Ln(x dec.Value, ctx dec.Context) (dec.Value, error) {
	if !x.IsPositive() {
		return dec.Value{}, ErrNonPositiveLog
	}
	wctx := ctx.WithGuard(guardDigits)
	r, err := ln(x, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// ln evaluates the logarithm of a positive x at the working precision of
// ctx. x is halved or doubled into [1, 2) with the net binary shift
// tracked, so ln(x) = shift·ln2 + ln(reduced). Each iteration strictly
// moves x toward the interval, so both loops terminate.
func ln(x dec.Value, ctx dec.Context) (dec.Value, error) {
	var shift int64
	for x.Cmp(dec.Two) >= 0 {
		x = x.Mul(dec.Half, ctx)
		shift++
	}
	for x.Cmp(dec.One) < 0 {
		x = x.Mul(dec.Two, ctx)
		shift--
	}
	base, err := atanhLog(x, ctx)
	if err != nil {
		return dec.Value{}, err
	}
	if shift == 0 {
		return base, nil
	}
	ln2, err := logTwo(ctx)
	if err != nil {
		return dec.Value{}, err
	}
	return dec.FromInt64(shift).Mul(ln2, ctx).Add(base, ctx), nil
}

// atanhLog computes ln(x) for x in [1, 2) through the identity
// ln(x) = 2·atanh(t) with t = (x−1)/(x+1), summing the atanh series
// Σ t^(2j+1)/(2j+1). t stays within [0, 1/3), so convergence is fast.
func atanhLog(x dec.Value, ctx dec.Context) (dec.Value, error) {
	t, err := x.Sub(dec.One, ctx).Div(x.Add(dec.One, ctx), ctx)
	if err != nil {
		return dec.Value{}, err
	}
	sum := series.New(func(j dec.Value) (dec.Value, error) {
		odd := dec.Two.Mul(j, ctx).Add(dec.One, ctx)
		p, err := IntegerPow(t, odd, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return p.Div(odd, ctx)
	})
	s, err := sum.SumInfinite(0, ctx)
	if err != nil {
		return dec.Value{}, err
	}
	return dec.Two.Mul(s, ctx), nil
}
