package newton

import "github.com/katalvlaran/decmath/dec"

// oscillationWindow is the recency-cache size used to detect a solver
// bouncing between guesses at the precision boundary. Two slots catch the
// only cycle a damped Newton step produces in practice: a 2-cycle.
const oscillationWindow = 2

// Solver is an immutable Newton–Raphson configuration: the function, its
// derivative, and the clamping policy. One Solver may run many Solve calls.
type Solver struct {
	f      Func
	fPrime Func
	opts   Options
}

// NewSolver builds a solver for f with derivative fPrime. Panics with
// ErrNilFunction when either is nil. No derivative-consistency check is
// performed; a mismatched fPrime yields wrong, undetected results.
func NewSolver(f, fPrime Func, opts ...Option) *Solver {
	if f == nil || fPrime == nil {
		panic(ErrNilFunction)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{f: f, fPrime: fPrime, opts: o}
}

// Solve iterates x ← clamp(x − f(x)/f′(x)) from start under ctx until the
// guess stops changing or revisits a recently seen value, then returns the
// clamped last result. A zero derivative propagates as the division error
// of the value type. Errors from f, f′ or the clamp abort immediately.
func (s *Solver) Solve(start dec.Value, ctx dec.Context) (dec.Value, error) {
	result := start
	cache := NewCache(oscillationWindow, start)
	for {
		fx, err := s.f(result)
		if err != nil {
			return dec.Value{}, err
		}
		dfx, err := s.fPrime(result)
		if err != nil {
			return dec.Value{}, err
		}
		step, err := fx.Div(dfx, ctx)
		if err != nil {
			return dec.Value{}, err
		}
		guess, err := s.clamp(result.Sub(step, ctx))
		if err != nil {
			return dec.Value{}, err
		}
		if guess.Equals(result) || cache.Contains(guess) {
			break
		}
		cache.Update(guess)
		result = guess
	}
	return s.clamp(result)
}

// clamp applies the configured clamping policy: custom clamp when bounds
// and clamp are both present, interval clamp when only bounds are, the
// identity otherwise.
func (s *Solver) clamp(v dec.Value) (dec.Value, error) {
	switch {
	case s.opts.Min != nil && s.opts.Max != nil && s.opts.Clamp != nil:
		return s.opts.Clamp(v)
	case s.opts.Min != nil && s.opts.Max != nil:
		return v.Clamp(*s.opts.Min, *s.opts.Max), nil
	default:
		return v, nil
	}
}
