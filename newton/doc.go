// Package newton finds roots of real functions over arbitrary-precision
// decimals with a clamped Newton–Raphson iteration.
//
// 🚀 What is newton?
//
//	Given f and its derivative f′, Solve iterates
//
//	    x ← clamp(x − f(x)/f′(x))
//
//	under the caller's precision context until one of two terminal
//	conditions holds:
//	  1. the new guess equals the previous one (converged), or
//	  2. the new guess already sits in a small recency cache
//	     (oscillating between values at the precision boundary).
//	Either way the clamped last result is returned.
//
// ✨ Clamping:
//   - WithBounds(min, max) alone applies plain interval clamping.
//   - WithBounds plus WithClamp hands each raw guess to the custom clamp
//     instead, which enables non-interval logic such as reducing a guess
//     modulo π for periodic targets (see trig.Arctan).
//   - Neither option leaves guesses untouched.
//
// ⚙️ Usage (√2 as the positive root of x²−2):
//
//	ctx := dec.NewContext(25)
//	f := func(x dec.Value) (dec.Value, error) {
//	    return x.Mul(x, ctx).Sub(dec.Two, ctx), nil
//	}
//	fPrime := func(x dec.Value) (dec.Value, error) {
//	    return dec.Two.Mul(x, ctx), nil
//	}
//	root, err := newton.NewSolver(f, fPrime).Solve(dec.One, ctx)
//
// ⚠️ Caller responsibilities: a mismatched derivative produces wrong but
// undetected results, and a zero derivative at an iterate surfaces as the
// division error of the underlying value type. Inputs on which the
// iteration neither converges nor cycles loop forever.
package newton
