// Integer-only views of a Value: exact big-integer extraction, parity
// tests, and the bitwise contract. Every operation here rejects fractional
// input with ErrNotInteger instead of silently truncating.
package dec

import "math/big"

var bigTen = big.NewInt(10)

// bigInt returns the exact integer value of v, or ErrNotInteger when v has
// a fractional part.
func (v Value) bigInt() (*big.Int, error) {
	// The engine keeps the coefficient non-negative and carries the sign
	// separately.
	i := new(big.Int).Set(&v.d.Coeff)
	if v.d.Negative {
		i.Neg(i)
	}
	exp := int64(v.d.Exponent)
	switch {
	case exp > 0:
		i.Mul(i, new(big.Int).Exp(bigTen, big.NewInt(exp), nil))
	case exp < 0:
		q, r := new(big.Int).QuoRem(i, new(big.Int).Exp(bigTen, big.NewInt(-exp), nil), new(big.Int))
		if r.Sign() != 0 {
			return nil, ErrNotInteger
		}
		i = q
	}
	return i, nil
}

// IsInteger reports whether v has no fractional part. Trailing zeros do not
// matter: 2.00 is an integer.
func (v Value) IsInteger() bool {
	_, err := v.bigInt()
	return err == nil
}

// RequireInteger returns v unchanged when it is an integer, and
// ErrNotInteger otherwise. Convenience for precondition checks.
func RequireInteger(v Value) (Value, error) {
	if !v.IsInteger() {
		return Value{}, ErrNotInteger
	}
	return v, nil
}

// IsEven reports whether v is an even integer. ErrNotInteger on fractions.
func (v Value) IsEven() (bool, error) {
	i, err := v.bigInt()
	if err != nil {
		return false, err
	}
	return i.Bit(0) == 0, nil
}

// IsOdd reports whether v is an odd integer. ErrNotInteger on fractions.
func (v Value) IsOdd() (bool, error) {
	even, err := v.IsEven()
	if err != nil {
		return false, err
	}
	return !even, nil
}

// Int64 returns v as a machine integer. ErrNotInteger on fractions,
// ErrRange outside the int64 range.
func (v Value) Int64() (int64, error) {
	i, err := v.bigInt()
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, ErrRange
	}
	return i.Int64(), nil
}

// ShiftLeft returns v * 2^n for integer v.
func (v Value) ShiftLeft(n uint) (Value, error) {
	i, err := v.bigInt()
	if err != nil {
		return Value{}, err
	}
	return FromBigInt(i.Lsh(i, n)), nil
}

// ShiftRight returns v / 2^n rounded toward negative infinity, for
// integer v.
func (v Value) ShiftRight(n uint) (Value, error) {
	i, err := v.bigInt()
	if err != nil {
		return Value{}, err
	}
	return FromBigInt(i.Rsh(i, n)), nil
}

// And returns the bitwise AND of two integers.
func (v Value) And(w Value) (Value, error) {
	return v.bitOp(w, (*big.Int).And)
}

// Or returns the bitwise OR of two integers.
func (v Value) Or(w Value) (Value, error) {
	return v.bitOp(w, (*big.Int).Or)
}

// Xor returns the bitwise XOR of two integers.
func (v Value) Xor(w Value) (Value, error) {
	return v.bitOp(w, (*big.Int).Xor)
}

// Not returns the bitwise complement of an integer (two's-complement
// semantics, so Not(x) == -x-1).
func (v Value) Not() (Value, error) {
	i, err := v.bigInt()
	if err != nil {
		return Value{}, err
	}
	return FromBigInt(i.Not(i)), nil
}

func (v Value) bitOp(w Value, op func(z, x, y *big.Int) *big.Int) (Value, error) {
	iv, err := v.bigInt()
	if err != nil {
		return Value{}, err
	}
	iw, err := w.bigInt()
	if err != nil {
		return Value{}, err
	}
	return FromBigInt(op(iv, iv, iw)), nil
}
