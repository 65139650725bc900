// Package series evaluates sums of term functions over integer index
// sequences, finitely or to convergence, and provides the stateful
// number suppliers those terms feed on.
//
// 🚀 What is series?
//
//	The summation engine behind every series expansion in decmath:
//	exp's Taylor series, ln's atanh series, the BBP series for π, and
//	the Maclaurin series for sin and cos all reduce to
//
//	    Σ f(i)   for i = start, start+1, ...
//
//	evaluated either over an explicit finite range (Sum) or until the
//	rounded partial sum stops changing (SumInfinite).
//
// ✨ Key pieces:
//   - Summation    — wraps a Term and runs it over an index range.
//   - NumberSupplier — a stateful incremental sequence generator with
//     pre-advance ("return old, then advance") and post-advance
//     ("advance, then return new") protocols.
//   - FactorialSupplier — the NumberSupplier for n!; the base factorial
//     is computed exactly, later steps multiply under the series context.
//
// ⚙️ Usage (e = Σ 1/n!):
//
//	ctx := dec.NewContext(30)
//	fact, _ := series.NewFactorialSupplier(dec.Zero, ctx)
//	s := series.New(func(n dec.Value) (dec.Value, error) {
//	    return dec.One.Div(fact.NextPre(), ctx)
//	})
//	e, _ := s.SumInfinite(0, ctx)
//
// ⚠️ Contract: SumInfinite assumes the series converges monotonically
// under the context's rounding. A divergent term function never
// terminates; that is the caller's responsibility, not a guarded
// failure mode. A term closed over a stateful supplier is valid for a
// single sequential pass only.
package series
