// Package dec: sentinel errors, rounding rules, and shared constants.
//
// Errors:
//
//	ErrDivisionByZero - divisor (or reciprocal argument) is zero.
//	ErrNotInteger     - an integer-only operation received a fractional value.
//	ErrRange          - a value does not fit the requested machine range.
//	ErrZeroPrecision  - a Context was requested with zero digits.
package dec

import (
	"math"

	"github.com/cockroachdb/apd/v2"
	"github.com/pkg/errors"
)

// Sentinel errors for dec operations.
var (
	// ErrDivisionByZero indicates a zero divisor in Div, Rem or Reciprocal.
	ErrDivisionByZero = errors.New("dec: division by zero")

	// ErrNotInteger indicates a fractional operand passed to an
	// integer-only operation (parity tests, bit operations, Int64).
	ErrNotInteger = errors.New("dec: operand is not an integer")

	// ErrRange indicates a value outside the requested machine range.
	ErrRange = errors.New("dec: value out of range")

	// ErrZeroPrecision indicates a Context constructed with 0 digits.
	ErrZeroPrecision = errors.New("dec: context precision must be positive")
)

// Rounding selects the rule applied when an operation must discard digits.
// The engine names its rules with strings; the alias keeps them assignable.
type Rounding = string

// Rounding rules re-exported from the underlying engine.
// RoundHalfUp is the default used by NewContext.
const (
	RoundDown     = apd.RoundDown
	RoundUp       = apd.RoundUp
	RoundHalfUp   = apd.RoundHalfUp
	RoundHalfDown = apd.RoundHalfDown
	RoundHalfEven = apd.RoundHalfEven
	RoundFloor    = apd.RoundFloor
	RoundCeiling  = apd.RoundCeiling
)

// Shared constants. Values are immutable, so these may be used freely.
var (
	// Zero is the decimal 0.
	Zero = FromInt64(0)

	// One is the decimal 1.
	One = FromInt64(1)

	// NegOne is the decimal -1.
	NegOne = FromInt64(-1)

	// Two is the decimal 2.
	Two = FromInt64(2)

	// Half is the decimal 0.5.
	Half = MustParse("0.5")

	// MaxNative is the largest machine integer (2^63 - 1). Exponents up to
	// this magnitude can be handed to the engine's native power operation;
	// anything larger needs iterative squaring.
	MaxNative = FromInt64(math.MaxInt64)
)

// exactCtx performs structurally exact operations (floor, ceiling,
// trailing-zero handling). Precision 0 disables rounding in the engine.
var exactCtx = apd.BaseContext
