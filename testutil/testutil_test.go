package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	vol := Uniform(4, 3, 2, 7)
	require.Equal(t, 4, vol.Width())
	require.Equal(t, 3, vol.Height())
	require.Equal(t, 2, vol.Depth())
	assert.InDelta(t, 7.0, vol.Intensity(0, 0, 0), 1e-6)
	assert.InDelta(t, 7.0, vol.Intensity(3, 2, 1), 1e-6)
}

func TestCrossBarrier(t *testing.T) {
	vol := CrossBarrier()
	require.Equal(t, 20, vol.Width())
	require.Equal(t, 20, vol.Height())
	require.Equal(t, 1, vol.Depth())

	// Barrier arms are dark, the gaps and the field bright.
	assert.InDelta(t, 1.0, vol.Intensity(10, 0, 0), 1e-6)
	assert.InDelta(t, 1.0, vol.Intensity(0, 10, 0), 1e-6)
	assert.InDelta(t, 255.0, vol.Intensity(10, 3, 0), 1e-6)
	assert.InDelta(t, 255.0, vol.Intensity(16, 10, 0), 1e-6)
	assert.InDelta(t, 255.0, vol.Intensity(2, 2, 0), 1e-6)
}

func TestBlocked(t *testing.T) {
	vol := Blocked(10, 4, 2)
	for z := 0; z < 2; z++ {
		for y := 0; y < 4; y++ {
			assert.Zero(t, vol.Intensity(5, y, z))
		}
	}
	assert.InDelta(t, 255.0, vol.Intensity(4, 0, 0), 1e-6)
}

func TestLine3D(t *testing.T) {
	vol := Line3D(8, 5, 5, 2, 3, 200, 10)
	for x := 0; x < 8; x++ {
		assert.InDelta(t, 200.0, vol.Intensity(x, 2, 3), 1e-6)
	}
	assert.InDelta(t, 10.0, vol.Intensity(0, 0, 0), 1e-6)
}

func TestCosts(t *testing.T) {
	assert.InDelta(t, 1.0, UnitCost{}.CostMovingTo(42), 1e-12)
	assert.InDelta(t, 1.0, UnitCost{}.MinStepCost(), 1e-12)
	assert.InDelta(t, 1e9, WallCost{}.CostMovingTo(0), 1e-3)
	assert.InDelta(t, 1.0, WallCost{}.CostMovingTo(100), 1e-12)
}
