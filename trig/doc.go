// Package trig computes π and the trigonometric and inverse-trigonometric
// functions over arbitrary-precision decimals.
//
// 🚀 How it works:
//
//	π        — the Bailey–Borwein–Plouffe (BBP) series
//	           Σ 16^−k · (4/(8k+1) − 2/(8k+4) − 1/(8k+5) − 1/(8k+6))
//	           summed to convergence. A Chudnovsky-series variant is a
//	           known faster alternative but carries weaker precision
//	           guarantees at high digit counts, so BBP is the strategy
//	           wired in here.
//	sin, cos — the angle is reduced by the nearest multiple of π/2 into
//	           [−π/4, π/4], the quadrant n = round(2θ/π) mod 4 is
//	           tracked, and a Maclaurin series of sin or cos of the
//	           reduced angle is dispatched with the quadrant's swap and
//	           sign rules applied.
//	tan, csc, sec, cot — derived from sin and cos by division; poles
//	           surface as dec.ErrDivisionByZero.
//	arcsin, arccos — Newton–Raphson on sin(y)−x and cos(y)−x with
//	           interval bounds; arguments outside [−1, 1] are ErrDomain.
//	arctan   — the reflection arctan(x) = sign(x)·π/2 − arctan(1/x) for
//	           |x| > 1; otherwise Newton–Raphson on tan(y)−x with a
//	           custom clamp that reduces guesses modulo π back into
//	           (−π/2, π/2), because tan is periodic and a plain interval
//	           clamp would pin a runaway guess to the boundary.
//	arccsc, arcsec, arccot — reciprocal-argument calls to arcsin, arccos
//	           and arctan, with the +π branch correction for arccot of
//	           negative arguments.
//
// All exported entry points evaluate internally with guard digits and
// round once into the caller's context.
package trig
