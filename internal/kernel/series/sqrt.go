package series

import (
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/internal/kernel"
)

// Sqrt returns the square root of value by Newton-Raphson iteration.
//
// The iteration starts from value itself and runs to a fixed point, see
// kernel.NewtonSqrt.
//
// Special cases are:
//
//	Sqrt(±0) = ±0
//	Sqrt(+Inf) = +Inf
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T core.Float](value T) T {
	switch {
	case value == 0:
		return value
	case value < 0 || value != value:
		return core.NaN[T]()
	case !core.IsFinite(value):
		return value
	}

	return kernel.NewtonSqrt(value, value)
}
