package euclid

import "golang.org/x/exp/constraints"

// TryDivide divides n by d using Euclidean division and returns the quotient
// and remainder. That is, it returns q and r such that:
//
//	n == q*d + r && 0 <= r < |d|
//
// regardless of the signs of n and d. This differs from Go's / and %
// operators, which truncate toward zero and give r the sign of n.
//
// TryDivide returns ErrDivByZero if d is zero and ErrOverflow if q is not
// representable in T.
func TryDivide[T constraints.Signed](n, d T) (q, r T, err error) {
	if d == 0 {
		return 0, 0, ErrDivByZero
	}
	if d == -1 {
		// n/-1 is the only quotient that can overflow
		q, ok := neg(n)
		if !ok {
			return 0, 0, ErrOverflow
		}
		return q, 0, nil
	}
	q, r = n/d, n%d
	if r < 0 {
		// n < 0 here; move r up by |d| and compensate in q
		if d > 0 {
			q--
			r += d
		} else {
			q++
			r -= d
		}
	}
	return q, r, nil
}

// Divide is like TryDivide but panics if d is zero or the quotient overflows.
func Divide[T constraints.Signed](n, d T) (q, r T) {
	q, r, err := TryDivide(n, d)
	if err != nil {
		panic(err)
	}
	return q, r
}
