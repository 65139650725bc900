package trig

import (
	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/newton"
)

// Arcsin computes the inverse sine of x under ctx, in [−π/2, π/2].
// Returns ErrDomain when x lies outside [−1, 1].
func Arcsin(x dec.Value, ctx dec.Context) (dec.Value, error) {
	if !x.Between(dec.NegOne, dec.One, true, true) {
		return dec.Value{}, ErrDomain
	}
	wctx := ctx.WithGuard(guardDigits)
	hp, err := halfPi(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	f := func(y dec.Value) (dec.Value, error) {
		s, err := Sin(y, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return s.Sub(x, wctx), nil
	}
	fPrime := func(y dec.Value) (dec.Value, error) {
		return Cos(y, wctx)
	}
	solver := newton.NewSolver(f, fPrime, newton.WithBounds(hp.Neg(), hp))
	// x itself lies in [−1, 1] ⊂ [−π/2, π/2], a serviceable first guess.
	r, err := solver.Solve(x, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// Arccos computes the inverse cosine of x under ctx, in [0, π].
// Returns ErrDomain when x lies outside [−1, 1].
func Arccos(x dec.Value, ctx dec.Context) (dec.Value, error) {
	if !x.Between(dec.NegOne, dec.One, true, true) {
		return dec.Value{}, ErrDomain
	}
	wctx := ctx.WithGuard(guardDigits)
	p, err := pi(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	hp := p.Mul(dec.Half, wctx)
	f := func(y dec.Value) (dec.Value, error) {
		c, err := Cos(y, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return c.Sub(x, wctx), nil
	}
	fPrime := func(y dec.Value) (dec.Value, error) {
		s, err := Sin(y, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return s.Neg(), nil
	}
	solver := newton.NewSolver(f, fPrime, newton.WithBounds(dec.Zero, p))
	// arccos(x) ≈ π/2 − x near zero; the start stays inside (0, π).
	r, err := solver.Solve(hp.Sub(x, wctx), wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// Arctan computes the inverse tangent of x under ctx, in (−π/2, π/2).
// For |x| > 1 it uses the reflection arctan(x) = sign(x)·π/2 − arctan(1/x)
// so the Newton iteration only ever runs on arguments within [−1, 1].
func Arctan(x dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	hp, err := halfPi(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	if x.Abs().Cmp(dec.One) > 0 {
		inv, err := x.Reciprocal(wctx)
		if err != nil {
			return dec.Value{}, err
		}
		inner, err := Arctan(inv, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		if x.IsNegative() {
			hp = hp.Neg()
		}
		return hp.Sub(inner, wctx).Round(ctx), nil
	}
	p, err := pi(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	f := func(y dec.Value) (dec.Value, error) {
		t, err := Tan(y, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return t.Sub(x, wctx), nil
	}
	// sec²(y) = 1/cos²(y)
	fPrime := func(y dec.Value) (dec.Value, error) {
		c, err := Cos(y, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return dec.One.Div(c.Mul(c, wctx), wctx)
	}
	// tan is periodic and unbounded; pinning a runaway guess to the
	// interval boundary would strand the iteration there, so guesses are
	// folded back by whole periods instead.
	clamp := func(y dec.Value) (dec.Value, error) {
		q, err := y.Div(p, wctx)
		if err != nil {
			return dec.Value{}, err
		}
		return y.Sub(q.RoundToInt(wctx).Mul(p, wctx), wctx), nil
	}
	solver := newton.NewSolver(f, fPrime,
		newton.WithBounds(hp.Neg(), hp),
		newton.WithClamp(clamp),
	)
	r, err := solver.Solve(x, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// Arccsc computes the inverse cosecant of x under ctx as arcsin(1/x).
// x = 0 surfaces dec.ErrDivisionByZero; |x| < 1 falls out of the arcsin
// domain and yields ErrDomain.
func Arccsc(x dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	inv, err := x.Reciprocal(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	r, err := Arcsin(inv, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// Arcsec computes the inverse secant of x under ctx as arccos(1/x).
func Arcsec(x dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	inv, err := x.Reciprocal(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	r, err := Arccos(inv, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	return r.Round(ctx), nil
}

// Arccot computes the inverse cotangent of x under ctx as arctan(1/x),
// shifted by +π for negative x so the result stays on the continuous
// (0, π) branch.
func Arccot(x dec.Value, ctx dec.Context) (dec.Value, error) {
	wctx := ctx.WithGuard(guardDigits)
	inv, err := x.Reciprocal(wctx)
	if err != nil {
		return dec.Value{}, err
	}
	r, err := Arctan(inv, wctx)
	if err != nil {
		return dec.Value{}, err
	}
	if x.IsNegative() {
		p, err := pi(wctx)
		if err != nil {
			return dec.Value{}, err
		}
		r = r.Add(p, wctx)
	}
	return r.Round(ctx), nil
}
