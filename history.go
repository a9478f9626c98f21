package euclid

import "golang.org/x/exp/constraints"

// Step is one Euclidean division performed by Reduce. The remainder is not
// part of the step; it is the key the step is recorded under in a History,
// such that:
//
//	s.Dividend == s.Quotient*s.Divisor + rem && 0 <= rem < |s.Divisor|
type Step[T constraints.Signed] struct {
	Dividend T
	Divisor  T
	Quotient T
}

// History is the record of a Euclidean reduction of a pair of operands.
// Each step is indexed by the remainder it produced, including the final
// step that produced a remainder of zero.
//
// A History is never modified after Reduce returns it, so it may be read
// concurrently.
type History[T constraints.Signed] struct {
	a, b  T
	steps []Step[T]
	index map[T]int
}

// Reduce applies the Euclidean algorithm to a and b and returns their GCD
// along with the history of division steps. It requires |a| <= |b| and that
// a and b are not both zero; otherwise it returns ErrOperandOrder or
// ErrBothZero. The returned GCD d is negative only if a < 0 and a divides b,
// or if a == 0 and b < 0, in which case no steps are recorded and d == b.
// See ExtGCD for a wrapper that accepts any operands and normalizes the sign.
func Reduce[T constraints.Signed](a, b T) (d T, h *History[T], err error) {
	if a == 0 && b == 0 {
		return 0, nil, ErrBothZero
	}
	if mag(a) > mag(b) {
		return 0, nil, ErrOperandOrder
	}
	h = &History[T]{a: a, b: b, index: make(map[T]int)}
	d, err = reduce(a, b, h)
	if err != nil {
		return 0, nil, err
	}
	return d, h, nil
}

// reduce runs the Euclidean algorithm on a and b, recording each step in h
// if h is not nil.
func reduce[T constraints.Signed](a, b T, h *History[T]) (T, error) {
	for a != 0 {
		q, r, err := TryDivide(b, a)
		if err != nil {
			return 0, err
		}
		if h != nil {
			h.record(r, Step[T]{b, a, q})
		}
		b, a = a, r
	}
	return b, nil
}

// record appends s to the history under the remainder rem.
// Remainders strictly decrease, so rem is never already present.
func (h *History[T]) record(rem T, s Step[T]) {
	h.index[rem] = len(h.steps)
	h.steps = append(h.steps, s)
}

// Operands returns the operands the history was reduced from.
func (h *History[T]) Operands() (a, b T) {
	return h.a, h.b
}

// Len returns the number of steps in the history.
func (h *History[T]) Len() int {
	return len(h.steps)
}

// Step returns the step that produced the remainder rem.
// ok is false if no step produced rem.
func (h *History[T]) Step(rem T) (s Step[T], ok bool) {
	i, ok := h.index[rem]
	if !ok {
		return Step[T]{}, false
	}
	return h.steps[i], true
}

// Steps returns a copy of the steps in the order they were performed.
func (h *History[T]) Steps() []Step[T] {
	steps := make([]Step[T], len(h.steps))
	copy(steps, h.steps)
	return steps
}
