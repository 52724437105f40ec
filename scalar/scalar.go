package scalar

import "github.com/cwbudde/algo-scalar/core"

// Sqrt returns the square root of value.
//
// It returns ErrNegativeInput when value < 0. Sqrt(0) = 0, Sqrt(+Inf) = +Inf
// and Sqrt(NaN) = NaN.
func Sqrt[T core.Float](value T) (T, error) {
	return registered[T]{entry: resolve()}.Sqrt(value)
}

// Pow returns base raised to an integer exponent.
func Pow[T core.Float](base T, exponent int) T {
	return registered[T]{entry: resolve()}.Pow(base, exponent)
}

// Factorial returns n! in T. Results beyond the range of T are +Inf.
func Factorial[T core.Float](n uint) T {
	return registered[T]{entry: resolve()}.Factorial(n)
}

// Mod returns the remainder of value / divisor. The result has the sign of
// value, like math.Mod, and remainders tolerant-equal to the divisor are 0.
//
// It returns ErrZeroDivisor when divisor is tolerant-zero. A non-finite value
// gives NaN and an infinite divisor returns value unchanged.
func Mod[T core.Float](value, divisor T) (T, error) {
	return registered[T]{entry: resolve()}.Mod(value, divisor)
}

// Sin returns the sine of value (radians). Sin(±Inf) and Sin(NaN) are NaN.
func Sin[T core.Float](value T) T {
	return registered[T]{entry: resolve()}.Sin(value)
}

// Cos returns the cosine of value (radians).
func Cos[T core.Float](value T) T {
	return registered[T]{entry: resolve()}.Cos(value)
}

// Tan returns the tangent of value (radians).
//
// Tolerant multiples of π give 0 and the remaining tolerant multiples of π/2
// are singularities that give NaN.
func Tan[T core.Float](value T) T {
	return registered[T]{entry: resolve()}.Tan(value)
}

// Equals reports whether a and b differ by at most the epsilon of T.
func Equals[T core.Float](a, b T) bool { return core.Equals(a, b) }

// GreaterThan reports whether a exceeds b by more than the epsilon of T.
func GreaterThan[T core.Float](a, b T) bool { return core.GreaterThan(a, b) }

// LessThan reports whether a is below b by more than the epsilon of T.
func LessThan[T core.Float](a, b T) bool { return core.LessThan(a, b) }

// Sign returns -1, 0 or 1. Values within epsilon of zero have sign 0.
func Sign[T core.Float](value T) int { return core.Sign(value) }

// Abs returns the absolute value of value.
func Abs[T core.Float](value T) T { return core.Abs(value) }

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians[T core.Float](degrees T) T {
	return degrees * core.Constants[T]().DegToRad
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees[T core.Float](radians T) T {
	return radians * core.Constants[T]().RadToDeg
}
