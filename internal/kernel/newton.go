package kernel

import "github.com/cwbudde/algo-scalar/core"

// NewtonSqrt refines guess towards the square root of value by
// next = 0.5*(curr + value/curr) until it reaches a fixed point: an update
// that reproduces the current iterate, or one that returns to the previous
// iterate when the last bit oscillates. In the latter case the smaller of the
// two iterates is returned.
//
// value must be positive and finite and guess must be positive; the loop has
// no iteration counter, so it relies on those preconditions to converge.
func NewtonSqrt[T core.Float](value, guess T) T {
	curr, prev := guess, T(0)
	for {
		next := 0.5 * (curr + value/curr)
		if next == curr {
			return curr
		}
		if next == prev {
			return min(curr, next)
		}
		prev, curr = curr, next
	}
}
