package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDensePanicsOnBadDims(t *testing.T) {
	assert.Panics(t, func() { NewDense(0, 10, 1) })
	assert.Panics(t, func() { NewDense(10, -1, 1) })
	assert.Panics(t, func() { NewDense(10, 10, 0) })
}

func TestDenseSetAndIntensity(t *testing.T) {
	vol := NewDense(4, 3, 2)
	require.Equal(t, 4, vol.Width())
	require.Equal(t, 3, vol.Height())
	require.Equal(t, 2, vol.Depth())

	vol.Set(3, 2, 1, 42)
	assert.InDelta(t, 42.0, vol.Intensity(3, 2, 1), 1e-6)
	assert.Zero(t, vol.Intensity(0, 0, 0))
}

func TestComputeStats(t *testing.T) {
	vol := NewDense(2, 2, 1)
	vol.Set(0, 0, 0, 2)
	vol.Set(1, 0, 0, 4)
	vol.Set(0, 1, 0, 4)
	vol.Set(1, 1, 0, 6)

	st := ComputeStats(vol)
	assert.InDelta(t, 2.0, st.Min, 1e-12)
	assert.InDelta(t, 6.0, st.Max, 1e-12)
	assert.InDelta(t, 4.0, st.Mean, 1e-12)
	// Population standard deviation of {2,4,4,6}.
	assert.InDelta(t, 1.4142135623, st.StdDev, 1e-9)
}

func TestInBounds(t *testing.T) {
	vol := NewDense(4, 3, 2)
	assert.True(t, InBounds(vol, 0, 0, 0))
	assert.True(t, InBounds(vol, 3, 2, 1))
	assert.False(t, InBounds(vol, 4, 0, 0))
	assert.False(t, InBounds(vol, 0, 3, 0))
	assert.False(t, InBounds(vol, 0, 0, 2))
	assert.False(t, InBounds(vol, -1, 0, 0))
}
