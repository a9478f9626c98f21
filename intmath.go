package euclid

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// abs returns the absolute value of x, |x|.
// ok is false if |x| is not representable in T, which only happens for the
// minimum value of T.
func abs[T constraints.Signed](x T) (y T, ok bool) {
	if x >= 0 {
		return x, true
	}
	return neg(x)
}

// neg returns -x. ok is false if -x overflows.
func neg[T constraints.Signed](x T) (y T, ok bool) {
	// the minimum value of T is its own two's complement negation
	if x < 0 && -x < 0 {
		return x, false
	}
	return -x, true
}

// sgn returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn[T constraints.Signed](x T) T {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

// mag returns |x| as an unsigned number, which never overflows.
func mag[T constraints.Signed](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// mul128 returns the 128-bit two's complement product x*y.
func mul128(x, y int64) (hi, lo uint64) {
	hi, lo = bits.Mul64(mag(x), mag(y))
	if (x < 0) != (y < 0) {
		var b uint64 // b is for "borrow"
		lo, b = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, b)
	}
	return hi, lo
}

// combines reports whether r*a + s*b == v exactly. Every product fits in 127
// bits, so the 128-bit sum cannot wrap to v unless it equals v.
func combines[T constraints.Signed](r, a, s, b, v T) bool {
	h1, l1 := mul128(int64(r), int64(a))
	h2, l2 := mul128(int64(s), int64(b))
	l, c := bits.Add64(l1, l2, 0)
	h, _ := bits.Add64(h1, h2, c)
	vh := uint64(0)
	if v < 0 {
		vh = math.MaxUint64
	}
	return h == vh && l == uint64(int64(v))
}
