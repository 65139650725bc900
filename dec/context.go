package dec

import "github.com/cockroachdb/apd/v2"

// Context is an immutable precision context: a digit count plus a rounding
// rule. It is passed explicitly to every operation that can lose precision
// and is never stored as global state.
type Context struct {
	inner apd.Context
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithRounding overrides the default half-up rounding rule.
func WithRounding(r Rounding) ContextOption {
	return func(c *Context) { c.inner.Rounding = r }
}

// NewContext returns a Context carrying the given significant-digit count.
// The default rounding rule is half-up. Panics with ErrZeroPrecision when
// digits is zero; a context that cannot round is a configuration error, not
// a runtime condition.
func NewContext(digits uint32, opts ...ContextOption) Context {
	if digits == 0 {
		panic(ErrZeroPrecision)
	}
	c := Context{inner: *apd.BaseContext.WithPrecision(digits)}
	c.inner.Rounding = RoundHalfUp
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Precision reports the significant-digit count of the context.
func (c Context) Precision() uint32 {
	return c.inner.Precision
}

// WithPrecision returns a copy of the context with the given digit count.
// The rounding rule is preserved. Panics with ErrZeroPrecision on zero.
func (c Context) WithPrecision(digits uint32) Context {
	if digits == 0 {
		panic(ErrZeroPrecision)
	}
	c.inner.Precision = digits
	return c
}

// WithGuard returns a copy of the context with extra guard digits added to
// the precision. The elementary-function packages evaluate internally under
// a guarded context and round once into the caller's context, so that the
// requested digits are not eaten by intermediate rounding.
func (c Context) WithGuard(extra uint32) Context {
	return c.WithPrecision(c.inner.Precision + extra)
}

// Rounding reports the context's rounding rule.
func (c Context) Rounding() Rounding {
	return c.inner.Rounding
}
