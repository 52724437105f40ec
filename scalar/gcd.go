package scalar

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm.
//
// Both operands must be positive and a must not be smaller than b; any other
// input returns an error wrapping ErrNegativeInput.
func GCD[I constraints.Integer](a, b I) (I, error) {
	switch {
	case a <= 0 || b <= 0:
		return 0, fmt.Errorf("gcd(%d, %d): operands must be positive: %w", a, b, ErrNegativeInput)
	case a < b:
		return 0, fmt.Errorf("gcd(%d, %d): first operand is smaller than second: %w", a, b, ErrNegativeInput)
	}

	for b != 0 {
		a, b = b, a%b
	}
	return a, nil
}
