// Package power implements exponentiation over arbitrary-precision
// decimals: integer powers, the exponential function, the natural
// logarithm, and general real powers.
//
// 🚀 How the pieces fit:
//
//	IntegerPow — degenerate bases (0, 1, −1) answered directly; machine
//	             -range exponents delegated to the engine's native power;
//	             anything larger handled by square-and-multiply over the
//	             value type's parity and shift operations.
//	Exp        — range reduction x = k·ln2 + r with k = round(x/ln2),
//	             then 2^k · exp(r) where exp(r) is the Taylor series
//	             Σ rⁿ/n! summed to convergence. ln2 itself comes from the
//	             series Σ 2/(3(2k+1)·9^k), recomputed per call.
//	Ln         — repeated halving/doubling into [1, 2) with the net shift
//	             k tracked, then k·ln2 + 2·atanh((x−1)/(x+1)) with the
//	             atanh series Σ t^(2j+1)/(2j+1).
//	Pow        — integer exponents to IntegerPow; otherwise
//	             exp(exponent · ln(base)) for positive bases.
//
// All exported entry points evaluate internally with a few guard digits
// and round once into the caller's context.
//
// Errors:
//
//	ErrNonPositiveLog — Ln of zero or a negative value.
//	ErrUndefined      — Pow of a negative base with a non-integer exponent,
//	                    or IntegerPow with a fractional exponent.
//	dec.ErrDivisionByZero — 0 raised to a negative power.
package power
