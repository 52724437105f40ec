package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantsWide(t *testing.T) {
	c := Constants[float64]()

	assert.Equal(t, math.Pi, c.Pi)
	assert.Equal(t, math.Pi/2, c.HalfPi)
	assert.Equal(t, math.Pi/4, c.QuarterPi)
	assert.Equal(t, 2*math.Pi, c.TwoPi)
	assert.InDelta(t, math.Pi/180, c.DegToRad, 1e-18)
	assert.InDelta(t, 180/math.Pi, c.RadToDeg, 1e-13)
	assert.True(t, math.IsInf(c.Inf, 1))
	assert.Equal(t, math.Nextafter(1, 2)-1, c.MachineEpsilon)
	assert.Equal(t, math.Ldexp(1, 52), c.IntegralLimit)
}

func TestConstantsNarrow(t *testing.T) {
	c := Constants[float32]()

	assert.Equal(t, float32(math.Pi), c.Pi)
	assert.Equal(t, float32(math.Pi/2), c.HalfPi)
	assert.Equal(t, float32(math.Pi/4), c.QuarterPi)
	assert.Equal(t, float32(2*math.Pi), c.TwoPi)
	assert.Equal(t, float32(math.Pi/180), c.DegToRad)
	assert.Equal(t, float32(180/math.Pi), c.RadToDeg)
	assert.True(t, math.IsInf(float64(c.Inf), 1))
	assert.Equal(t, math.Nextafter32(1, 2)-1, c.MachineEpsilon)
	assert.Equal(t, float32(1<<23), c.IntegralLimit)
}

func TestConstantsFollowNamedType(t *testing.T) {
	c := Constants[meters]()
	assert.Equal(t, meters(math.Pi), c.Pi)
	assert.Equal(t, meters(WideEpsilon), Epsilon[meters]())
}

// Each width's epsilon has to sit well above that width's unit round-off,
// otherwise tolerant comparisons degrade into exact ones.
func TestEpsilonMatchesWidth(t *testing.T) {
	wideC := Constants[float64]()
	narrowC := Constants[float32]()

	require.Greater(t, wideC.Epsilon, 1000*wideC.MachineEpsilon)
	require.Greater(t, narrowC.Epsilon, 10*narrowC.MachineEpsilon)

	// The wide epsilon is finer than a narrow ulp at 1: used on float32 it
	// would reject neighbouring values.
	assert.Less(t, float32(WideEpsilon), narrowC.MachineEpsilon)

	// The narrow epsilon would hide differences a float64 clearly resolves.
	noise := 1e-7
	assert.False(t, Equals(1.0, 1.0+noise))
	assert.LessOrEqual(t, noise, float64(NarrowEpsilon))

	assert.Equal(t, float32(NarrowEpsilon), Epsilon[float32]())
	assert.Equal(t, WideEpsilon, Epsilon[float64]())
	assert.Equal(t, narrowC.MachineEpsilon, MachineEpsilon[float32]())
	assert.Equal(t, wideC.MachineEpsilon, MachineEpsilon[float64]())
}
