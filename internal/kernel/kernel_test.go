package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewtonSqrt(t *testing.T) {
	for _, v := range []float64{0.25, 2, 52, 1e-12, 1e12, 1e300} {
		got := NewtonSqrt(v, v)
		assert.InEpsilon(t, math.Sqrt(v), got, 1e-15, "value %g", v)
	}

	// A seed below the root converges to the same fixed point.
	assert.InEpsilon(t, math.Sqrt(2), NewtonSqrt(2.0, 0.1), 1e-15)

	got32 := NewtonSqrt(float32(52), float32(52))
	assert.InEpsilon(t, math.Sqrt(52), float64(got32), 1e-6)
}

func TestTanSpecialCase(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		want   float64
		wantOK bool
		nan    bool
	}{
		{name: "zero", value: 0, want: 0, wantOK: true},
		{name: "pi", value: math.Pi, want: 0, wantOK: true},
		{name: "minus two pi", value: -2 * math.Pi, want: 0, wantOK: true},
		{name: "half pi", value: math.Pi / 2, wantOK: true, nan: true},
		{name: "inf", value: math.Inf(1), wantOK: true, nan: true},
		{name: "nan", value: math.NaN(), wantOK: true, nan: true},
		{name: "regular", value: 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TanSpecialCase(tt.value, math.Mod)
			assert.Equal(t, tt.wantOK, ok)
			if tt.nan {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
