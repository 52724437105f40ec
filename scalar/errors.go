package scalar

import "errors"

var (
	// ErrNegativeInput is returned for inputs outside the non-negative
	// domain of Sqrt and for GCD operands that are not ordered positives.
	ErrNegativeInput = errors.New("scalar: input must not be negative")

	// ErrZeroDivisor is returned by Mod when the divisor is tolerant-zero.
	ErrZeroDivisor = errors.New("scalar: divisor must not be zero")
)
