package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirOpposite(t *testing.T) {
	assert.Equal(t, FromGoal, FromStart.Opposite())
	assert.Equal(t, FromStart, FromGoal.Opposite())
}

func TestNewBiNodeStartsFree(t *testing.T) {
	n := newBiNode(1, 2, 3)
	for _, d := range []Dir{FromStart, FromGoal} {
		assert.Equal(t, Free, n.State(d))
		assert.True(t, math.IsInf(n.G(d), 1))
		assert.True(t, math.IsInf(n.F(d), 1))
		assert.Nil(t, n.Predecessor(d))
		assert.Equal(t, -1, n.states[d].heapIdx)
	}
}

func TestSetFromIsPerDirection(t *testing.T) {
	n := newBiNode(0, 0, 0)
	pred := newBiNode(1, 0, 0)
	n.setFrom(2, 5, pred, FromGoal)

	assert.InDelta(t, 2.0, n.G(FromGoal), 0)
	assert.InDelta(t, 5.0, n.F(FromGoal), 0)
	assert.Same(t, pred, n.Predecessor(FromGoal))

	// The from-start record is untouched.
	assert.True(t, math.IsInf(n.G(FromStart), 1))
	assert.Nil(t, n.Predecessor(FromStart))
}

func TestConnectivityOffsets(t *testing.T) {
	tests := []struct {
		conn Connectivity
		want int
	}{
		{Conn26, 26},
		{Conn18, 18},
		{Conn6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.conn.String(), func(t *testing.T) {
			offs := tt.conn.offsets()
			assert.Len(t, offs, tt.want)
			for _, o := range offs {
				assert.NotEqual(t, [3]int{0, 0, 0}, o)
			}
		})
	}
}
