// Package decmath is an arbitrary-precision decimal numeric kernel:
// elementary transcendental functions on top of an immutable decimal
// value type, every result parameterized by a caller-supplied precision
// context.
//
// 🚀 What is decmath?
//
//	A pure-Go library that brings together:
//		• dec     — the immutable Value type and (digits, rounding) Context
//		• series  — finite and convergence-terminated summation, plus
//		            stateful number suppliers (factorials for n! series)
//		• newton  — a clamped Newton–Raphson solver with cycle detection
//		• power   — integer powers, exp, ln, and general real pow
//		• nroot   — n-th roots via Halley's method
//		• trig    — π (BBP series), sin/cos and friends, inverse trig
//
// ✨ Why decmath?
//
//   - Precision on the caller's terms – every lossy operation takes an
//     explicit context; nothing is computed at a fixed global precision
//   - Honest termination rules – infinite sums stop when the rounded
//     partial sum stops changing; solvers stop on convergence or on a
//     detected oscillation, never by silent iteration caps
//   - Immutable values – safe to share, safe to reuse, no hidden state
//
// Quick example:
//
//	ctx := dec.NewContext(20)
//	pi, _ := trig.Pi(ctx)      // 3.1415926535897932385
//	e, _  := power.Exp(dec.One, ctx)
//
// Dive into each package's doc.go for algorithms, contracts and examples.
//
//	go get github.com/katalvlaran/decmath
package decmath
