package euclid

// Coefficients returns the Bézout coefficients of v with respect to the
// operands a, b the history was reduced from. That is, it returns r, s such
// that:
//
//	v == r*a + s*b
//
// v must be a, b, or a remainder recorded in the history; otherwise
// Coefficients returns ErrNotReduced. It returns ErrOverflow if an
// intermediate coefficient is not representable in T.
func (h *History[T]) Coefficients(v T) (r, s T, err error) {
	switch v {
	case h.b:
		return 0, 1, nil
	case h.a:
		return 1, 0, nil
	}
	if len(h.steps) == 1 {
		// a divided b with no intermediate remainders
		st, ok := h.Step(0)
		if !ok || st.Divisor != v {
			return 0, 0, ErrNotReduced
		}
		return 1, -(st.Quotient - 1), nil
	}
	st, ok := h.Step(v)
	if !ok {
		return 0, 0, ErrNotReduced
	}

	// Walk back toward the operands keeping v == x*hi + y*lo, where hi and
	// lo are the dividend and divisor of the step last visited. The step
	// that produced lo has divisor hi, so substituting
	//
	//	lo == st.Dividend - st.Quotient*hi
	//
	// shifts the pair back by one step. The first step has hi == b, lo == a.
	//
	// Intermediate values may wrap, but the walk is exact modulo 2^n for an
	// n-bit T, so the result is correct whenever it fits in T. A result that
	// does not fit fails the final check.
	lo := st.Divisor
	x, y := T(1), -st.Quotient
	for lo != h.a {
		st, ok = h.Step(lo)
		if !ok {
			return 0, 0, ErrNotReduced
		}
		x, y = y, x-st.Quotient*y
		lo = st.Divisor
	}
	if !combines(y, h.a, x, h.b, v) {
		return 0, 0, ErrOverflow
	}
	return y, x, nil
}
