// Package newton: solver configuration, sentinel errors, and the function
// types consumed by Solve.
package newton

import (
	"errors"

	"github.com/katalvlaran/decmath/dec"
)

// Sentinel errors for solver construction.
var (
	// ErrNilFunction indicates a nil f or f′ passed to NewSolver.
	ErrNilFunction = errors.New("newton: function and derivative must be non-nil")

	// ErrBadBounds indicates WithBounds(min, max) with min > max.
	ErrBadBounds = errors.New("newton: min bound exceeds max bound")

	// ErrBadCacheSize indicates a Cache of fewer than one slot.
	ErrBadCacheSize = errors.New("newton: cache size must be at least 1")
)

// Func is a real function of one Value. Blocking work and precision
// handling live inside the closure; the solver only calls it.
type Func func(x dec.Value) (dec.Value, error)

// ClampFunc maps a raw Newton guess back into the solver's target region.
// It fully replaces interval clamping when configured.
type ClampFunc func(x dec.Value) (dec.Value, error)

// Options configures a Solver.
//
// Min, Max — optional interval bounds applied to every guess.
// Clamp    — optional custom clamp; effective only when both bounds are
//
//	also set, and then it overrides the interval clamp entirely.
type Options struct {
	Min   *dec.Value
	Max   *dec.Value
	Clamp ClampFunc
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithBounds confines guesses to [min, max]. Panics with ErrBadBounds when
// min > max; an inverted interval is a configuration error.
func WithBounds(min, max dec.Value) Option {
	if min.Cmp(max) > 0 {
		panic(ErrBadBounds)
	}
	return func(o *Options) {
		o.Min, o.Max = &min, &max
	}
}

// WithClamp installs a custom clamping mechanism. It takes effect only
// when bounds are also configured, and then replaces the default interval
// clamp (the precedence the periodic-reduction use case relies on).
func WithClamp(clamp ClampFunc) Option {
	return func(o *Options) {
		o.Clamp = clamp
	}
}

// DefaultOptions returns the zero configuration: no bounds, no clamp.
func DefaultOptions() Options {
	return Options{}
}
