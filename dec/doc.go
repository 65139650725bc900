// Package dec provides the immutable arbitrary-precision decimal value
// and the precision context that parameterize every operation in decmath.
//
// 🚀 What is dec?
//
//	A thin, immutable wrapper around cockroachdb/apd's decimal engine.
//	It pins down the exact numeric contract the elementary-function
//	packages (series, newton, power, nroot, trig) are written against:
//	  • Value   — an opaque, immutable decimal with a total order
//	  • Context — a (digit count, rounding rule) pair; never global state
//
// ✨ Key properties:
//   - Every operation returns a fresh Value; no aliasing, no mutation.
//   - Lossy arithmetic (Add, Sub, Mul, Div, ...) always takes an explicit
//     Context. Two contexts are never merged; the caller's context wins.
//   - Operations with a mathematical failure mode (Div, Rem, Reciprocal,
//     parity and bit operations, Int64) return an error. Structurally
//     total operations (Add, Neg, Floor, ...) return plain Values.
//
// ⚙️ Usage:
//
//	ctx := dec.NewContext(25)
//	x := dec.MustParse("1.5")
//	y := x.Mul(x, ctx).Add(dec.One, ctx) // 3.25
//
// Concurrency: Values are immutable and safe for concurrent reads.
// Contexts are plain values and may be shared freely.
package dec
