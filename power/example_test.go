package power_test

import (
	"fmt"

	"github.com/katalvlaran/decmath/dec"
	"github.com/katalvlaran/decmath/power"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegerPow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Raise 2 to the 10th. Integer exponents take the exact path, so the
//	result is the integer 1024, not an approximation.
func ExampleIntegerPow() {
	ctx := dec.NewContext(20)
	v, _ := power.IntegerPow(dec.Two, dec.FromInt64(10), ctx)
	fmt.Println(v)
	// Output:
	// 1024
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A non-integer exponent routes through exp(y·ln x): 2^0.5 is √2 to the
//	full 20 requested digits.
func ExamplePow() {
	ctx := dec.NewContext(20)
	v, _ := power.Pow(dec.Two, dec.Half, ctx)
	fmt.Println(v.Equals(dec.MustParse("1.4142135623730950488")))
	// Output:
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLn
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The logarithm rejects its undefined domain with a sentinel instead of
//	returning a NaN-like value.
func ExampleLn() {
	ctx := dec.NewContext(20)
	if _, err := power.Ln(dec.Zero, ctx); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: power: logarithm of non-positive value
}
