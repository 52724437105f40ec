package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type meters float64

func TestWidthOf(t *testing.T) {
	assert.Equal(t, WidthWide, WidthOf[float64]())
	assert.Equal(t, WidthNarrow, WidthOf[float32]())
	assert.Equal(t, WidthWide, WidthOf[meters]())
	assert.Equal(t, "narrow", WidthNarrow.String())
	assert.Equal(t, 32, WidthNarrow.Bits())
	assert.Equal(t, 64, WidthWide.Bits())
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "identical", a: 1, b: 1, want: true},
		{name: "within epsilon", a: 1, b: 1 + 1e-10, want: true},
		{name: "outside epsilon", a: 1, b: 1 + 1e-8, want: false},
		{name: "negative within", a: -3, b: -3 - 5e-10, want: true},
		{name: "nan", a: math.NaN(), b: math.NaN(), want: false},
		{name: "nan and finite", a: math.NaN(), b: 0, want: false},
		{name: "inf", a: math.Inf(1), b: math.Inf(1), want: false},
		{name: "negative inf", a: math.Inf(-1), b: math.Inf(-1), want: false},
		{name: "overflowing difference", a: math.MaxFloat64, b: -math.MaxFloat64, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equals(tt.a, tt.b))
		})
	}
}

func TestEqualsNarrow(t *testing.T) {
	var a float32 = 1.0

	assert.True(t, Equals(a, 1.0))
	assert.True(t, Equals(a, 1.000005))
	assert.False(t, Equals(a, 1.001))
	assert.False(t, Equals(a, 1.0001))

	// Neighbouring float32 values above 2^24 collapse to the same value.
	assert.True(t, Equals[float32](42_467_500_000, 42_467_500_006))
	assert.False(t, Equals[float32](42_467_500_000, 42_467_400_000))
	assert.False(t, Equals[float32](42_467_500_000, 42_466_000_000))
}

func TestGreaterLess(t *testing.T) {
	var one float32 = 1

	assert.False(t, GreaterThan(one, 1))
	assert.False(t, GreaterThan(one, 1.001))
	assert.True(t, GreaterThan(one, 0.5))
	assert.True(t, GreaterThan(one, 0.999))
	assert.False(t, GreaterThan(one, 0.999995))

	assert.False(t, LessThan(one, 1))
	assert.True(t, LessThan(one, 1.001))
	assert.False(t, LessThan(one, 1.000005))
	assert.False(t, LessThan(one, 0.5))

	inf := math.Inf(1)
	nan := math.NaN()
	for _, v := range []float64{inf, -inf, nan} {
		assert.False(t, GreaterThan(v, 0), "GreaterThan(%v, 0)", v)
		assert.False(t, GreaterThan(0, v), "GreaterThan(0, %v)", v)
		assert.False(t, LessThan(v, 0), "LessThan(%v, 0)", v)
		assert.False(t, LessThan(0, v), "LessThan(0, %v)", v)
	}
}

func TestEqualsReflexiveForFinite(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 1e-300, 1e300, math.MaxFloat64, -math.SmallestNonzeroFloat64} {
		assert.True(t, Equals(v, v), "Equals(%v, %v)", v, v)
	}
	for _, v := range []float32{0, 1, -1, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		assert.True(t, Equals(v, v), "Equals(%v, %v)", v, v)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{name: "zero", x: 0, want: 0},
		{name: "negative zero", x: math.Copysign(0, -1), want: 0},
		{name: "positive", x: 5, want: 1},
		{name: "negative", x: -5, want: -1},
		{name: "half epsilon", x: WideEpsilon / 2, want: 0},
		{name: "negative half epsilon", x: -WideEpsilon / 2, want: 0},
		{name: "positive inf", x: math.Inf(1), want: 1},
		{name: "negative inf", x: math.Inf(-1), want: -1},
		{name: "nan", x: math.NaN(), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sign(tt.x))
		})
	}

	assert.Equal(t, 0, Sign[float32](NarrowEpsilon/2))
	assert.Equal(t, -1, Sign[float32](-0.5))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5.0, Abs(-5.0))
	assert.Equal(t, 5.0, Abs(5.0))
	assert.Equal(t, float32(0.25), Abs[float32](-0.25))
	assert.Equal(t, math.Inf(1), Abs(math.Inf(-1)))
	assert.Equal(t, math.Inf(1), Abs(math.Inf(1)))
	assert.True(t, math.IsNaN(Abs(math.NaN())))

	// Within epsilon of zero the value is treated as zero and kept.
	assert.Equal(t, -WideEpsilon/2, Abs(-WideEpsilon/2))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0.0))
	assert.True(t, IsFinite(math.MaxFloat64))
	assert.True(t, IsFinite[float32](math.MaxFloat32))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(Inf[float32](-1)))
	assert.False(t, IsFinite(NaN[float32]()))
}
