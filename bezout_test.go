package euclid_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/euclid"
)

// recursiveCoefficients computes the Bézout coefficients of v by recursive
// back-substitution in exact arithmetic: if the step that produced v divided
// b by a2, then
//
//	v == b - q*a2 == (r_b - q*r_a2)*A + (s_b - q*s_a2)*B
func recursiveCoefficients[T int8 | int64](h *euclid.History[T], v T) (r, s *big.Int) {
	a, b := h.Operands()
	switch v {
	case b:
		return big.NewInt(0), big.NewInt(1)
	case a:
		return big.NewInt(1), big.NewInt(0)
	}
	st, ok := h.Step(v)
	if !ok {
		panic(fmt.Sprintf("%d not in history", v))
	}
	rb, sb := recursiveCoefficients(h, st.Dividend)
	ra, sa := recursiveCoefficients(h, st.Divisor)
	q := big.NewInt(int64(st.Quotient))
	r = new(big.Int).Sub(rb, new(big.Int).Mul(q, ra))
	s = new(big.Int).Sub(sb, new(big.Int).Mul(q, sa))
	return r, s
}

func TestHistory_Coefficients(t *testing.T) {
	cases := []struct {
		A, B, V, R, S int64
	}{
		{25, 105, 105, 0, 1},
		{25, 105, 25, 1, 0},
		{25, 105, 5, -4, 1},
		{25, 105, 0, 21, -5},
		{20, 100, 20, 1, 0},
		{20, 100, 100, 0, 1},
		{math.MaxInt64 - 1, -math.MaxInt64, 0, math.MaxInt64, math.MaxInt64 - 1},
		{-(math.MaxInt64 - 1), -math.MaxInt64, 0, -math.MaxInt64, math.MaxInt64 - 1},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("Reduce(%d,%d).Coefficients(%d)", c.A, c.B, c.V), func(t *testing.T) {
			_, h, err := euclid.Reduce(c.A, c.B)
			if err != nil {
				t.Fatalf("got unexpected error %v", err)
			}
			r, s, err := h.Coefficients(c.V)
			if err != nil {
				t.Fatalf("got unexpected error %v", err)
			}
			if r != c.R || s != c.S {
				t.Errorf("got (%d, %d), want (%d, %d)", r, s, c.R, c.S)
			}
		})
	}
}

func TestHistory_Coefficients_errors(t *testing.T) {
	cases := []struct {
		A, B, V int8
		Err     error
	}{
		{25, 105, 7, euclid.ErrNotReduced},
		// a single exact division records only the remainder 0, whose step
		// divided b by a, so only the operands themselves can be resolved
		{20, 100, 0, euclid.ErrNotReduced},
		{20, 100, 40, euclid.ErrNotReduced},
		// 0 == 128*-123 + -123*-128, but 128 does not fit in int8
		{-123, -128, 0, euclid.ErrOverflow},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("Reduce(%d,%d).Coefficients(%d)", c.A, c.B, c.V), func(t *testing.T) {
			_, h, err := euclid.Reduce(c.A, c.B)
			if err != nil {
				t.Fatalf("got unexpected error %v", err)
			}
			_, _, err = h.Coefficients(c.V)
			if err != c.Err {
				t.Errorf("got error %v, want %v", err, c.Err)
			}
		})
	}
}

func TestHistory_Coefficients_matchesRecursive(t *testing.T) {
	for _, c := range SymGCDCases {
		m, n := c.M, c.N
		if m == 0 {
			continue
		}
		if new(big.Int).Abs(big.NewInt(m)).Cmp(new(big.Int).Abs(big.NewInt(n))) > 0 {
			m, n = n, m
		}
		t.Run(fmt.Sprintf("Reduce(%d,%d)", m, n), func(t *testing.T) {
			_, h, err := euclid.Reduce(m, n)
			require.NoError(t, err)
			if h.Len() < 2 {
				return
			}
			for _, v := range remainders(h) {
				wr, ws := recursiveCoefficients(h, v)
				r, s, err := h.Coefficients(v)
				if !wr.IsInt64() || !ws.IsInt64() {
					assert.ErrorIs(t, err, euclid.ErrOverflow, "Coefficients(%d)", v)
					continue
				}
				require.NoError(t, err, "Coefficients(%d)", v)
				assert.Equal(t, wr.Int64(), r, "r of %d", v)
				assert.Equal(t, ws.Int64(), s, "s of %d", v)
			}
		})
	}
}

func TestHistory_Coefficients_int8(t *testing.T) {
	for m := int8(math.MinInt8); ; m++ {
		for n := int8(math.MinInt8); ; n++ {
			checkCoefficients8(t, m, n)
			if n == math.MaxInt8 {
				break
			}
		}
		if m == math.MaxInt8 {
			break
		}
	}
}

// checkCoefficients8 compares Coefficients against the exact recursive
// reference for every remainder recorded by Reduce(m, n).
func checkCoefficients8(t *testing.T, m, n int8) {
	t.Helper()
	_, h, err := euclid.Reduce(m, n)
	if err != nil {
		// operands out of order, both zero, or -128/-1
		return
	}
	steps := h.Steps()
	if len(steps) < 2 {
		return
	}
	for i := range steps {
		v := int8(0)
		if i+1 < len(steps) {
			v = steps[i+1].Divisor
		}
		wr, ws := recursiveCoefficients(h, v)
		r, s, err := h.Coefficients(v)
		if wr.Int64() < math.MinInt8 || wr.Int64() > math.MaxInt8 ||
			ws.Int64() < math.MinInt8 || ws.Int64() > math.MaxInt8 {
			assert.ErrorIs(t, err, euclid.ErrOverflow, "Reduce(%d,%d).Coefficients(%d)", m, n, v)
			continue
		}
		if assert.NoError(t, err, "Reduce(%d,%d).Coefficients(%d)", m, n, v) {
			assert.Equal(t, [2]int64{wr.Int64(), ws.Int64()}, [2]int64{int64(r), int64(s)},
				"Reduce(%d,%d).Coefficients(%d)", m, n, v)
		}
	}
}
