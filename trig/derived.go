package trig

import "github.com/katalvlaran/decmath/dec"

// Tan computes sin/cos of angle under ctx. A zero cosine (an odd multiple
// of π/2) surfaces as dec.ErrDivisionByZero.
func Tan(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	s, err := Sin(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	c, err := Cos(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	q, err := s.Div(c, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return q.Round(ctx), nil
}

// Cot computes cos/sin of angle under ctx.
func Cot(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	s, err := Sin(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	c, err := Cos(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	q, err := c.Div(s, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return q.Round(ctx), nil
}

// Csc computes 1/sin of angle under ctx.
func Csc(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	return reciprocalOf(Sin, angle, ctx)
}

// Sec computes 1/cos of angle under ctx.
func Sec(angle dec.Value, ctx dec.Context) (dec.Value, error) {
	return reciprocalOf(Cos, angle, ctx)
}

func reciprocalOf(fn func(dec.Value, dec.Context) (dec.Value, error), angle dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	v, err := fn(angle, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	r, err := v.Reciprocal(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}
