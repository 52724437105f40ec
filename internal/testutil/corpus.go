package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-scalar/core"
)

// Span returns n evenly spaced samples covering [lo, hi) in T. The upper
// bound is excluded so that a full period is not sampled twice.
func Span[T core.Float](n int, lo, hi float64) []T {
	if n <= 0 {
		return nil
	}
	grid := floats.Span(make([]float64, n+1), lo, hi)
	return Convert[T](grid[:n])
}

// DeterministicValues returns n uniform samples from [lo, hi) drawn with a
// fixed seed.
func DeterministicValues[T core.Float](seed int64, n int, lo, hi float64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		out[i] = T(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// QuarterTurns returns k·π/2 for k in [-count, count], in T.
func QuarterTurns[T core.Float](count int) []T {
	halfPi := core.Constants[T]().HalfPi
	out := make([]T, 0, 2*count+1)
	for k := -count; k <= count; k++ {
		out = append(out, T(k)*halfPi)
	}
	return out
}

// Convert copies src into a new slice of T.
func Convert[T core.Float, S core.Float](src []S) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = T(v)
	}
	return out
}
