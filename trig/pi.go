package trig

import (
	"errors"

	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/power"
	"github.com/katalvlaran/decmath/series"
)

// ErrDomain indicates an inverse-trig argument outside [-1, 1].
var ErrDomain = errors.New("trig: argument outside [-1, 1]")

// guardDigits is the working-precision surplus the exported entry points
// evaluate under before rounding into the caller's context.
const guardDigits = 10

// Small constants of the BBP series and the quadrant arithmetic.
var (
	four    = dec.FromInt64(4)
	five    = dec.FromInt64(5)
	six     = dec.FromInt64(6)
	eight   = dec.FromInt64(8)
	sixteen = dec.FromInt64(16)
)

// Pi computes π under ctx via the BBP series.
func Pi(ctx dec.Context) (dec.Value, error) {
	r, err := pi(ctx.WithGuard(guardDigits))
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// pi sums the BBP series at the working precision of ctx:
//
//	Σ (1/16^k) · (4/(8k+1) − 2/(8k+4) − 1/(8k+5) − 1/(8k+6))
//
// Each term contributes slightly more than one hexadecimal digit.
func pi(ctx dec.Context) (dec.Value, error) {
	sum := series.New(func(k dec.Value) (dec.Value, error) {
		p16, err := power.IntegerPow(sixteen, k, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		scale, err := p16.Reciprocal(ctx)
		if err != nil {
			return dec.Value{}, err
		}
		k8 := eight.Mul(k, ctx)
		t1, err := four.Div(k8.Add(dec.One, ctx), ctx)
		if err != nil {
			return dec.Value{}, err
		}
		t2, err := dec.Two.Div(k8.Add(four, ctx), ctx)
		if err != nil {
			return dec.Value{}, err
		}
		t3, err := dec.One.Div(k8.Add(five, ctx), ctx)
		if err != nil {
			return dec.Value{}, err
		}
		t4, err := dec.One.Div(k8.Add(six, ctx), ctx)
		if err != nil {
			return dec.Value{}, err
		}
		return scale.Mul(t1.Sub(t2, ctx).Sub(t3, ctx).Sub(t4, ctx), ctx), nil
	})
	return sum.SumInfinite(0, ctx)
}

// halfPi returns π/2 at the precision of ctx.
func halfPi(ctx dec.Context) (dec.Value, error) {
	p, err := pi(ctx)
	if err != nil {
		return dec.Value{}, err
	}
	return p.Mul(dec.Half, ctx), nil
}
