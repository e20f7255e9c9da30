package kine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAccumulatorSingleContact(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()
	acc.AddContact(Vec{X: 1}, 0.5, 1)

	offset, _ := acc.Resolve(Vec{}, false, 1e-6)
	require.InDelta(t, -0.5, float64(offset.X), 1e-6)
}

func TestDefaultAccumulatorVelocityCutAgainstNormal(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()
	// Normal points from the kinematic down into the floor below it; a
	// downward velocity is "moving into the wall" (d=n·v>0) and gets cut
	// to zero, matching S2.
	acc.AddContact(Vec{Y: -1}, 0.9, 1)

	_, v := acc.Resolve(Vec{Y: -11}, false, 1e-6)
	assert.InDelta(t, 0.0, float64(v.Y), 1e-6)
}

func TestDefaultAccumulatorBounceOnlyAppliesWhenNotMovingIntoContact(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()
	acc.AddContact(Vec{Y: -1}, 0.9, 1)

	// Velocity already points away from the contact (d=n·v<0); bounce
	// applies `velocity += n*(d*r)` per §4.6 step 5c.
	_, v := acc.Resolve(Vec{Y: 5}, true, 1e-6)
	assert.InDelta(t, 10.0, float64(v.Y), 1e-6)
}

func TestDefaultAccumulatorWeightRatioScalesCorrection(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()
	acc.AddContact(Vec{X: 1}, 1, 0.25)

	offset, v := acc.Resolve(Vec{X: 4}, false, 1e-6)
	assert.InDelta(t, -0.25, float64(offset.X), 1e-6)
	assert.InDelta(t, 3.0, float64(v.X), 1e-6)
}

func TestDefaultAccumulatorResolvesNearestContactFirst(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()
	diag := Real(1 / math.Sqrt2)
	// Recorded far-then-near; resolve must still process the smaller
	// time_of_impact contact first (spec §4.6 step 5a, P6).
	acc.AddContact(Vec{X: diag, Y: diag}, 0.9, 0.5)
	acc.AddContact(Vec{X: 1}, 0.1, 0.5)

	_, v := acc.Resolve(Vec{X: 10}, false, 1e-6)
	assert.InDelta(t, 3.75, float64(v.X), 1e-3)
	assert.InDelta(t, -1.25, float64(v.Y), 1e-3)
}

func TestDefaultAccumulatorNoContactPreservesVelocity(t *testing.T) {
	var acc DefaultAccumulator
	acc.Reset()

	offset, v := acc.Resolve(Vec{X: -3, Y: 2}, false, 1e-6)
	assert.Equal(t, Vec{}, offset)
	assert.Equal(t, Real(-3), v.X)
	assert.Equal(t, Real(2), v.Y)
}
