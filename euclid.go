// Package euclid provides Euclidean division, the greatest common divisor and
// the Bézout coefficients of fixed-width signed integers.
// See the ExtGCD function and the History type for details.
package euclid

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by functions in this package.
// All caller errors wrap ErrInvalidArgument, so
//
//	errors.Is(err, ErrInvalidArgument)
//
// reports whether err was caused by the arguments alone.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivByZero       = fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	ErrBothZero        = fmt.Errorf("%w: both operands are zero", ErrInvalidArgument)
	ErrOperandOrder    = fmt.Errorf("%w: first operand exceeds second in magnitude", ErrInvalidArgument)
	ErrNotReduced      = fmt.Errorf("%w: value not produced by reduction", ErrInvalidArgument)
	ErrModulus         = fmt.Errorf("%w: modulus is not positive", ErrInvalidArgument)
	ErrNotWhole        = fmt.Errorf("%w: not a whole number", ErrInvalidArgument)
	ErrOverflow        = errors.New("integer overflow")
	ErrNotInvertible   = errors.New("not invertible")
)

// Whole extracts an integer operand from a float64. The result is exactly
// equal to v, or else an error is returned: ErrNotWhole if v is NaN,
// infinite, or has a fractional part, and ErrOverflow if v is a whole number
// outside the range of int64.
func Whole(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotWhole
	}
	if v != math.Trunc(v) {
		return 0, ErrNotWhole
	}
	// -2^63 is exact in float64, but 2^63-1 rounds up to 2^63
	if v < -0x1p63 || v >= 0x1p63 {
		return 0, ErrOverflow
	}
	return int64(v), nil
}
