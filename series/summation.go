package series

import (
	"errors"

	"github.com/katalvlaran/decmath/dec"
)

// ErrNilTerm indicates that New was handed a nil term function.
var ErrNilTerm = errors.New("series: term function must be non-nil")

// Term maps an integer index (carried as a Value) to the series term at
// that index. It must be deterministic for convergence detection to be
// meaningful; side effects through captured suppliers are allowed but tie
// the term to one sequential pass.
type Term func(n dec.Value) (dec.Value, error)

// Summation evaluates a term function over an index range. It holds no
// state of its own; any state lives inside the term's closure.
type Summation struct {
	term Term
}

// New wraps a term function for summation. Panics on a nil term.
func New(term Term) *Summation {
	if term == nil {
		panic(ErrNilTerm)
	}
	return &Summation{term: term}
}

// Sum accumulates term(i) for i in [start, end] inclusive under ctx.
// When end < start the range is empty and the result is zero. No
// convergence check is applied.
func (s *Summation) Sum(start, end int64, ctx dec.Context) (dec.Value, error) {
	result := dec.Zero
	for i := start; i <= end; i++ {
		t, err := s.term(dec.FromInt64(i))
		if err != nil {
			return dec.Value{}, err
		}
		result = result.Add(t, ctx)
	}
	return result, nil
}

// SumInfinite accumulates term(i) for i = start upward until the rounded
// partial sum stops changing, i.e. until a term is too small to alter the
// result under ctx. start may be negative. A series that does not
// converge loops forever; see the package contract.
func (s *Summation) SumInfinite(start int64, ctx dec.Context) (dec.Value, error) {
	result := dec.Zero
	for i := start; ; i++ {
		t, err := s.term(dec.FromInt64(i))
		if err != nil {
			return dec.Value{}, err
		}
		next := result.Add(t, ctx)
		if next.Equals(result) {
			return result, nil
		}
		result = next
	}
}
