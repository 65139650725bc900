// Package nroot extracts n-th roots of arbitrary-precision decimals.
//
// 🚀 How it works:
//
//	Integer degrees run Halley's method, a third-order refinement of
//	Newton's iteration, as the fixed point
//
//	    r ← r · ((n−1)·rⁿ + (n+1)·a) / ((n+1)·rⁿ + (n−1)·a)
//
//	starting from 1 and stopping when a new guess exactly equals the
//	previous one under the context. Non-integer degrees fall back to the
//	identity a^(1/n) through package power.
//
// Dispatch by sign and parity:
//   - a = 0, n > 0            → 0
//   - a > 0, integer n > 0    → Halley
//   - a > 0, integer n < 0    → reciprocal of the positive-degree root
//   - a < 0, odd integer n    → −root(|a|, n)
//   - a > 0, non-integer n    → pow(a, 1/n)
//   - everything else         → ErrUndefined (even roots of negative
//     radicands have no real value)
package nroot
