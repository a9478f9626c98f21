package euclid

import "golang.org/x/exp/constraints"

// TryGCD returns the greatest common divisor (GCD) of a and b.
// The GCD is the largest positive integer that divides both a and b.
// TryGCD returns ErrBothZero if a and b are both zero and ErrOverflow if the
// GCD is not representable in T, as for gcd(math.MinInt64, 0).
func TryGCD[T constraints.Signed](a, b T) (T, error) {
	if a == 0 && b == 0 {
		return 0, ErrBothZero
	}
	if mag(a) > mag(b) {
		a, b = b, a
	}
	d := T(1)
	if a != -1 {
		var err error
		d, err = reduce(a, b, nil)
		if err != nil {
			return 0, err
		}
	}
	d, ok := abs(d)
	if !ok {
		return 0, ErrOverflow
	}
	return d, nil
}

// GCD is like TryGCD but panics if a and b are both zero or the result
// overflows.
func GCD[T constraints.Signed](a, b T) T {
	d, err := TryGCD(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// TryExtGCD returns the GCD of a and b along with the Bézout coefficients.
// That is, it returns g, r, s such that:
//
//	r*a + s*b == g == GCD(a, b)
//
// The coefficients are those found by the Euclidean algorithm; if a is zero
// they are 0 and the sign of b, and symmetrically if b is zero.
// TryExtGCD returns ErrBothZero if a and b are both zero and ErrOverflow if
// any result is not representable in T.
func TryExtGCD[T constraints.Signed](a, b T) (g, r, s T, err error) {
	switch {
	case a == 0 && b == 0:
		return 0, 0, 0, ErrBothZero
	case a == 0:
		g, ok := abs(b)
		if !ok {
			return 0, 0, 0, ErrOverflow
		}
		return g, 0, sgn(b), nil
	case b == 0:
		g, ok := abs(a)
		if !ok {
			return 0, 0, 0, ErrOverflow
		}
		return g, sgn(a), 0, nil
	}
	if mag(a) <= mag(b) {
		g, r, s, err = extGCD(a, b)
	} else {
		g, s, r, err = extGCD(b, a)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	if g < 0 {
		var ok1, ok2, ok3 bool
		g, ok1 = neg(g)
		r, ok2 = neg(r)
		s, ok3 = neg(s)
		if !(ok1 && ok2 && ok3) {
			return 0, 0, 0, ErrOverflow
		}
	}
	return g, r, s, nil
}

// ExtGCD is like TryExtGCD but panics if a and b are both zero or any
// result overflows.
func ExtGCD[T constraints.Signed](a, b T) (g, r, s T) {
	g, r, s, err := TryExtGCD(a, b)
	if err != nil {
		panic(err)
	}
	return g, r, s
}

// extGCD computes the GCD and coefficients of non-zero a and b with
// |a| <= |b|. The GCD may be negative.
func extGCD[T constraints.Signed](a, b T) (g, r, s T, err error) {
	if a == -1 {
		// b/-1 overflows for the minimum value of T
		return -1, 1, 0, nil
	}
	g, h, err := Reduce(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	r, s, err = h.Coefficients(g)
	if err != nil {
		return 0, 0, 0, err
	}
	return g, r, s, nil
}

// TryModInverse returns the inverse of a modulo m, the x in [0, m) such that
//
//	a*x ≡ 1 (mod m)
//
// TryModInverse returns ErrModulus if m is not positive and ErrNotInvertible
// if a and m are not coprime.
func TryModInverse[T constraints.Signed](a, m T) (T, error) {
	if m <= 0 {
		return 0, ErrModulus
	}
	g, r, _, err := TryExtGCD(a, m)
	if err != nil {
		return 0, err
	}
	if g != 1 {
		return 0, ErrNotInvertible
	}
	_, x, err := TryDivide(r, m)
	if err != nil {
		return 0, err
	}
	return x, nil
}

// ModInverse is like TryModInverse but panics if the inverse does not exist.
func ModInverse[T constraints.Signed](a, m T) T {
	x, err := TryModInverse(a, m)
	if err != nil {
		panic(err)
	}
	return x
}
