package series

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/decmath/dec"
)

// ErrBadStart indicates a negative or non-integer factorial start value.
var ErrBadStart = errors.New("series: factorial start must be a non-negative integer")

// NumberSupplier generates a sequence of values indexed by n, one step at a
// time. Implementations are mutable and single-threaded by design: every
// advance call changes the supplier in place.
//
// The two advance protocols differ in what they hand back:
//   - NextPre / NextPreN return the value as it was *before* advancing.
//   - NextPost / NextPostN advance first and return the new value.
type NumberSupplier interface {
	// CurrentValue returns the value at the current index without advancing.
	CurrentValue() dec.Value

	// CurrentN returns the current index n.
	CurrentN() dec.Value

	// NextPre returns the current value, then advances one step.
	NextPre() dec.Value

	// NextPreN returns the current value, then advances the given number
	// of steps.
	NextPreN(steps int) dec.Value

	// NextPost advances one step, then returns the new value.
	NextPost() dec.Value

	// NextPostN advances the given number of steps, then returns the new
	// value.
	NextPostN(steps int) dec.Value
}

// FactorialSupplier produces n! incrementally: the base start! is computed
// exactly, each advance multiplies the running value by the next n under
// the series context. Series over (2n)! or (2n+1)! denominators advance it
// two steps per term.
type FactorialSupplier struct {
	value dec.Value
	n     int64
	ctx   dec.Context
}

var _ NumberSupplier = (*FactorialSupplier)(nil)

// NewFactorialSupplier creates a supplier positioned at start with value
// start!. The base factorial is exact regardless of ctx; ctx bounds only
// the incremental multiplications that follow. Returns ErrBadStart when
// start is negative or not an integer.
func NewFactorialSupplier(start dec.Value, ctx dec.Context) (*FactorialSupplier, error) {
	if !start.IsInteger() || start.IsNegative() {
		return nil, ErrBadStart
	}
	n, err := start.Int64()
	if err != nil {
		return nil, ErrBadStart
	}
	return &FactorialSupplier{
		value: dec.FromBigInt(rangeProduct(2, n)),
		n:     n,
		ctx:   ctx,
	}, nil
}

// rangeProduct returns the exact product of the integers in [lo, hi] by
// splitting the range in half, so the big-integer multiplications stay
// balanced. An empty range yields 1.
func rangeProduct(lo, hi int64) *big.Int {
	switch {
	case lo > hi:
		return big.NewInt(1)
	case lo == hi:
		return big.NewInt(lo)
	}
	mid := lo + (hi-lo)/2
	return new(big.Int).Mul(rangeProduct(lo, mid), rangeProduct(mid+1, hi))
}

// CurrentValue returns the current n! without advancing.
func (f *FactorialSupplier) CurrentValue() dec.Value { return f.value }

// CurrentN returns the current n.
func (f *FactorialSupplier) CurrentN() dec.Value { return dec.FromInt64(f.n) }

// NextPre returns the current n!, then advances one step.
func (f *FactorialSupplier) NextPre() dec.Value { return f.NextPreN(1) }

// NextPreN returns the current n!, then advances steps times.
func (f *FactorialSupplier) NextPreN(steps int) dec.Value {
	out := f.value
	for i := 0; i < steps; i++ {
		f.advance()
	}
	return out
}

// NextPost advances one step, then returns the new n!.
func (f *FactorialSupplier) NextPost() dec.Value { return f.NextPostN(1) }

// NextPostN advances steps times, then returns the new n!.
func (f *FactorialSupplier) NextPostN(steps int) dec.Value {
	for i := 0; i < steps; i++ {
		f.advance()
	}
	return f.value
}

func (f *FactorialSupplier) advance() {
	f.n++
	f.value = f.value.Mul(dec.FromInt64(f.n), f.ctx)
}
