package series

import (
	"github.com/cwbudde/algo-scalar/core"
	"github.com/cwbudde/algo-scalar/internal/kernel"
)

// MaxTerms bounds the number of Maclaurin terms summed by Sin.
const MaxTerms = 1000

// twoPiTail is 2π minus its float64 rounding.
const twoPiTail = 2.4492935982947064e-16

// Sin returns the sine of value (radians).
//
// The argument is reduced into [-π/2, π/2] in float64 for both widths, see
// turns and fold, then Σ (-1)^n x^(2n+1) / (2n+1)! is summed term by term
// in T. Summation stops at the first term within epsilon of zero (that term
// is still added), at the first non-finite term, or after MaxTerms terms.
//
// Special cases are:
//
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin[T core.Float](value T) T {
	if !core.IsFinite(value) {
		return core.NaN[T]()
	}
	return maclaurinSin(T(fold(turns(float64(value)))))
}

// Cos returns the cosine of value (radians) as the sine of the reduced
// argument shifted by π/2.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos[T core.Float](value T) T {
	if !core.IsFinite(value) {
		return core.NaN[T]()
	}
	return maclaurinSin(T(fold(turns(float64(value)) + core.Constants[float64]().HalfPi)))
}

func maclaurinSin[T core.Float](x T) T {
	var sum T
	for n := 0; n < MaxTerms; n++ {
		k := 2*n + 1
		term := Pow[T](-1, n) * Pow(x, k) / Factorial[T](uint(k))
		if !core.IsFinite(term) {
			break
		}
		sum += term
		if core.Equals(term, 0) {
			break
		}
	}
	return sum
}

// turns reduces x modulo 2π into (-2π, 2π). The period is split into its
// float64 rounding and twoPiTail: the exact remainder by the rounded period
// is corrected by the tail times the number of whole turns removed. The
// result is accurate while that correction is, up to |x| near 2^70; beyond
// that the loop still converges into one period.
func turns(x float64) float64 {
	head := core.Constants[float64]().TwoPi
	for x >= head || x <= -head {
		r := remainder(x, head)
		x = r - (x-r)/head*twoPiTail
	}
	return x
}

// fold maps x from about (-2.5π, 2.5π) into [-π/2, π/2] keeping sin(x)
// unchanged.
func fold(x float64) float64 {
	c := core.Constants[float64]()
	switch {
	case x > c.Pi:
		x -= c.TwoPi
	case x < -c.Pi:
		x += c.TwoPi
	}

	switch {
	case x > c.HalfPi:
		x = c.Pi - x
	case x < -c.HalfPi:
		x = -c.Pi - x
	}
	return x
}

// Tan returns the tangent of value (radians) as Sin(value) / Cos(value).
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
	return Sin(value) / Cos(value)
}
