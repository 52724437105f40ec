//go:build fastmath

package platform

import (
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/internal/kernel"
)

// Sqrt returns the square root of value, seeding Newton-Raphson with a fast
// approximation. The seed is within a fraction of a percent for ordinary
// inputs, so the fixed point is reached after two or three updates.
func Sqrt[T core.Float](value T) T {
	switch {
	case value == 0:
		return value
	case value < 0 || value != value:
		return core.NaN[T]()
	case !core.IsFinite(value):
		return value
	}

	guess := T(approx.FastSqrt(float64(value)))
	if !(guess > 0) || !core.IsFinite(guess) {
		// Outside the approximation's range (subnormals, extremes).
		guess = value
	}
	return kernel.NewtonSqrt(value, guess)
}
