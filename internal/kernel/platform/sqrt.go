//go:build !fastmath

package platform

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-scalar/core"
)

// Sqrt returns the square root of value using the hardware instruction
// exposed by the math packages.
func Sqrt[T core.Float](value T) T {
	if narrow[T]() {
		return T(math32.Sqrt(float32(value)))
	}
	return T(math.Sqrt(float64(value)))
}
