package series

import "github.com/cwbudde/algo-scalar/core"

// Pow returns base raised to an integer exponent.
//
// Special cases are:
//
//	Pow(NaN, e) = Pow(±Inf, e) = NaN
//	Pow(b, 0) = 1
//	Pow(b, e) = 1 when b is within epsilon of 1
//	Pow(b, e < 0) = 1 / (b * Pow(b, -e-1))
func Pow[T core.Float](base T, exponent int) T {
	if !core.IsFinite(base) {
		return core.NaN[T]()
	}

	if exponent == 0 || core.Equals(base, 1) {
		return 1
	}

	if exponent > 0 {
		return powUint(base, uint(exponent))
	}

	// -exponent-1 stays representable for math.MinInt.
	return 1 / (base * powUint(base, uint(-exponent-1)))
}

// powUint multiplies by squaring so the loop runs log2(n) times.
func powUint[T core.Float](base T, n uint) T {
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		n >>= 1
		if n > 0 {
			base *= base
		}
	}
	return result
}

// Factorial returns n! as a floating-point product.
// Once the product overflows to +Inf it is returned without further work.
func Factorial[T core.Float](n uint) T {
	result := T(1)
	for i := uint(2); i <= n; i++ {
		result *= T(i)
		if !core.IsFinite(result) {
			return result
		}
	}
	return result
}
