package dec

import (
	"math/big"

	"github.com/cockroachdb/apd/v2"
	"github.com/pkg/errors"
)

// Value is an immutable arbitrary-precision decimal. The zero Value is the
// decimal 0. Every operation returns a fresh Value and never mutates its
// receiver or operands.
type Value struct {
	d apd.Decimal
}

// FromInt64 returns the Value for the given machine integer.
func FromInt64(v int64) Value {
	return Value{d: *apd.New(v, 0)}
}

// FromBigInt returns the Value for the given big integer. The argument is
// copied; later mutation of it does not affect the result.
func FromBigInt(v *big.Int) Value {
	return Value{d: *apd.NewWithBigInt(new(big.Int).Set(v), 0)}
}

// Parse converts a decimal string ("1.5", "-4", "1e100") into a Value.
func Parse(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, errors.Wrap(err, "dec: parse")
	}
	return Value{d: *d}, nil
}

// MustParse is Parse for compile-time-known literals; it panics on a
// malformed string.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the value in plain decimal notation with trailing zeros
// stripped: 1.50 prints as 1.5, 1.2e2 as 120.
func (v Value) String() string {
	var r apd.Decimal
	r.Reduce(&v.d)
	return r.Text('f')
}

// must converts an engine condition that cannot legitimately occur on the
// operation at hand into a panic. It fires only on exponent-range
// exhaustion of the underlying engine.
func must(err error, op string) {
	if err != nil {
		panic(errors.Wrap(err, "dec: "+op))
	}
}

// Add returns v + w under ctx.
func (v Value) Add(w Value, ctx Context) Value {
	var r apd.Decimal
	_, err := ctx.inner.Add(&r, &v.d, &w.d)
	must(err, "add")
	return Value{d: r}
}

// Sub returns v - w under ctx.
func (v Value) Sub(w Value, ctx Context) Value {
	var r apd.Decimal
	_, err := ctx.inner.Sub(&r, &v.d, &w.d)
	must(err, "sub")
	return Value{d: r}
}

// Mul returns v * w under ctx.
func (v Value) Mul(w Value, ctx Context) Value {
	var r apd.Decimal
	_, err := ctx.inner.Mul(&r, &v.d, &w.d)
	must(err, "mul")
	return Value{d: r}
}

// Div returns v / w under ctx, or ErrDivisionByZero when w is zero.
func (v Value) Div(w Value, ctx Context) (Value, error) {
	if w.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	var r apd.Decimal
	if _, err := ctx.inner.Quo(&r, &v.d, &w.d); err != nil {
		return Value{}, errors.Wrap(err, "dec: div")
	}
	return Value{d: r}, nil
}

// Rem returns the remainder of v / w under ctx (same sign as v), or
// ErrDivisionByZero when w is zero.
func (v Value) Rem(w Value, ctx Context) (Value, error) {
	if w.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	var r apd.Decimal
	if _, err := ctx.inner.Rem(&r, &v.d, &w.d); err != nil {
		return Value{}, errors.Wrap(err, "dec: rem")
	}
	return Value{d: r}, nil
}

// Reciprocal returns 1 / v under ctx, or ErrDivisionByZero when v is zero.
func (v Value) Reciprocal(ctx Context) (Value, error) {
	return One.Div(v, ctx)
}

// NativePow returns v^exp using the engine's own context-bounded power.
// The elementary packages reach for it only with integer exponents inside
// the machine range; larger exponents go through iterative squaring in
// package power.
func (v Value) NativePow(exp Value, ctx Context) (Value, error) {
	var r apd.Decimal
	if _, err := ctx.inner.Pow(&r, &v.d, &exp.d); err != nil {
		return Value{}, errors.Wrap(err, "dec: pow")
	}
	return Value{d: r}, nil
}

// Neg returns -v. Exact.
func (v Value) Neg() Value {
	var r apd.Decimal
	r.Neg(&v.d)
	return Value{d: r}
}

// Abs returns |v|. Exact.
func (v Value) Abs() Value {
	var r apd.Decimal
	r.Abs(&v.d)
	return Value{d: r}
}

// Round re-rounds v to the precision and rule of ctx.
func (v Value) Round(ctx Context) Value {
	var r apd.Decimal
	_, err := ctx.inner.Round(&r, &v.d)
	must(err, "round")
	return Value{d: r}
}

// RoundToInt rounds v to the nearest integer under ctx's rounding rule.
func (v Value) RoundToInt(ctx Context) Value {
	var r apd.Decimal
	_, err := ctx.inner.RoundToIntegralValue(&r, &v.d)
	must(err, "round to integral")
	return Value{d: r}
}

// Floor returns the largest integer <= v. Exact.
func (v Value) Floor() Value {
	var r apd.Decimal
	_, err := exactCtx.Floor(&r, &v.d)
	must(err, "floor")
	return Value{d: r}
}

// Ceil returns the smallest integer >= v. Exact.
func (v Value) Ceil() Value {
	var r apd.Decimal
	_, err := exactCtx.Ceil(&r, &v.d)
	must(err, "ceil")
	return Value{d: r}
}

// SetScale rescales v to the given number of fractional digits, rounding
// per ctx. A negative scale rounds left of the decimal point.
func (v Value) SetScale(scale int32, ctx Context) (Value, error) {
	var r apd.Decimal
	if _, err := ctx.inner.Quantize(&r, &v.d, -scale); err != nil {
		return Value{}, errors.Wrap(err, "dec: set scale")
	}
	return Value{d: r}, nil
}

// Cmp compares v and w numerically: -1 when v < w, 0 when equal, +1 when
// v > w. Scale is irrelevant.
func (v Value) Cmp(w Value) int {
	return v.d.Cmp(&w.d)
}

// Equals reports numeric equality. Like Cmp, it ignores trailing-zero
// scale: 1.5 equals 1.50.
func (v Value) Equals(w Value) bool {
	return v.d.Cmp(&w.d) == 0
}

// Sign reports -1, 0 or +1.
func (v Value) Sign() int {
	return v.d.Sign()
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.d.Sign() == 0
}

// IsPositive reports whether v > 0.
func (v Value) IsPositive() bool {
	return v.d.Sign() > 0
}

// IsNegative reports whether v < 0.
func (v Value) IsNegative() bool {
	return v.d.Sign() < 0
}

// NumDigits reports the number of digits in the coefficient of v.
func (v Value) NumDigits() int64 {
	return v.d.NumDigits()
}

// Clamp confines v to [min, max]. The caller must ensure min <= max.
func (v Value) Clamp(min, max Value) Value {
	if v.Cmp(min) < 0 {
		return min
	}
	if v.Cmp(max) > 0 {
		return max
	}
	return v
}

// Between reports whether v lies between lo and hi, with independently
// inclusive or exclusive bounds on each side.
func (v Value) Between(lo, hi Value, loIncl, hiIncl bool) bool {
	cl, ch := v.Cmp(lo), v.Cmp(hi)
	if cl < 0 || (cl == 0 && !loIncl) {
		return false
	}
	if ch > 0 || (ch == 0 && !hiIncl) {
		return false
	}
	return true
}
