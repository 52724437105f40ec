// Package platform implements the kernels that delegate to the platform math
// libraries: the standard math package for the wide width and
// github.com/chewxy/math32 for the narrow width.
//
// Two behaviours are layered on top of the plain library calls so that the
// platform family agrees with the series family: Mod snaps remainders whose
// magnitude is tolerant-equal to the divisor to zero, and Tan resolves
// multiples of π and π/2 before calling the library.
//
// math32 reduces trigonometric arguments with float32 constants, which loses
// about one narrow ulp of the argument per call and breaks down completely
// for large inputs. Narrow trigonometry therefore only uses math32 within one
// turn of the origin and evaluates in float64 elsewhere.
//
// Build with -tags fastmath to replace the square root with an approximate
// seed polished by Newton-Raphson, see sqrt_fast.go.
package platform

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/internal/kernel"
)

func narrow[T core.Float]() bool {
	return core.WidthOf[T]() == core.WidthNarrow
}

// Largest magnitudes below which every integer converts exactly to float32
// and float64.
const (
	narrowExactInt = int64(1) << 24
	wideExactInt   = int64(1) << 53
)

// Pow returns base raised to an integer exponent.
//
// Exponents beyond the exact integer range of the width round to an even
// float when converted, so the sign of a negative base is applied from the
// integer parity instead.
func Pow[T core.Float](base T, exponent int) T {
	limit := wideExactInt
	if narrow[T]() {
		limit = narrowExactInt
	}
	if e := int64(exponent); e > limit || e < -limit {
		mag := pow(core.Abs(base), exponent)
		if base < 0 && exponent&1 != 0 {
			return -mag
		}
		return mag
	}
	return pow(base, exponent)
}

func pow[T core.Float](base T, exponent int) T {
	if narrow[T]() {
		return T(math32.Pow(float32(base), float32(exponent)))
	}
	return T(math.Pow(float64(base), float64(exponent)))
}

// Factorial returns n! evaluated as Gamma(n+1).
//
// Both widths go through the float64 gamma function: it is exact for
// integral arguments up to 33, and conversion to float32 rounds or overflows
// to +Inf exactly like the narrow product would.
func Factorial[T core.Float](n uint) T {
	if n == 0 {
		return 1
	}
	return T(math.Gamma(float64(n) + 1))
}

// Mod returns the floating-point remainder of value/divisor with the sign of
// value. A remainder whose magnitude is tolerant-equal to the divisor's is
// representation noise at the wrap point and is returned as 0.
func Mod[T core.Float](value, divisor T) T {
	var r T
	if narrow[T]() {
		r = T(math32.Mod(float32(value), float32(divisor)))
	} else {
		r = T(math.Mod(float64(value), float64(divisor)))
	}

	if core.Equals(core.Abs(r), core.Abs(divisor)) {
		return 0
	}
	return r
}

// withinTurn reports whether the narrow library can reduce value accurately.
func withinTurn[T core.Float](value T) bool {
	turn := core.Constants[T]().TwoPi
	return narrow[T]() && value > -turn && value < turn
}

// Sin returns the sine of value (radians).
func Sin[T core.Float](value T) T {
	if withinTurn(value) {
		return T(math32.Sin(float32(value)))
	}
	return T(math.Sin(float64(value)))
}

// Cos returns the cosine of value (radians).
func Cos[T core.Float](value T) T {
	if withinTurn(value) {
		return T(math32.Cos(float32(value)))
	}
	return T(math.Cos(float64(value)))
}

// Tan returns the tangent of value (radians).
//
// Special cases are:
//
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
//	Tan(kπ) = 0
//	Tan(kπ + π/2) = NaN
func Tan[T core.Float](value T) T {
	if r, ok := kernel.TanSpecialCase(value, Mod[T]); ok {
		return r
	}

	if withinTurn(value) {
		return T(math32.Tan(float32(value)))
	}
	return T(math.Tan(float64(value)))
}
