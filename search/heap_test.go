package search

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openNode(x, y, z int, f float64, dir Dir) *BiNode {
	n := newBiNode(x, y, z)
	n.setFrom(f, f, nil, dir)
	n.states[dir].state = Open
	return n
}

func TestHeapPopOrder(t *testing.T) {
	h := newHeap(FromStart)
	require.Equal(t, 0, h.Len())
	require.Nil(t, h.Pop())

	fs := []float64{5, 1, 4, 2, 3}
	for i, f := range fs {
		h.Push(openNode(i, 0, 0, f, FromStart))
	}
	require.Equal(t, len(fs), h.Len())

	var got []float64
	for h.Len() > 0 {
		got = append(got, h.Pop().F(FromStart))
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestHeapTiesBreakOnCoordinates(t *testing.T) {
	h := newHeap(FromStart)
	h.Push(openNode(2, 0, 0, 7, FromStart))
	h.Push(openNode(0, 1, 0, 7, FromStart))
	h.Push(openNode(0, 0, 3, 7, FromStart))
	h.Push(openNode(0, 0, 1, 7, FromStart))

	var got [][3]int
	for h.Len() > 0 {
		n := h.Pop()
		got = append(got, [3]int{n.X, n.Y, n.Z})
	}
	assert.Equal(t, [][3]int{{0, 0, 1}, {0, 0, 3}, {0, 1, 0}, {2, 0, 0}}, got)
}

func TestHeapDecreaseKey(t *testing.T) {
	h := newHeap(FromGoal)
	a := openNode(0, 0, 0, 10, FromGoal)
	b := openNode(1, 0, 0, 20, FromGoal)
	c := openNode(2, 0, 0, 30, FromGoal)
	h.Push(a)
	h.Push(b)
	h.Push(c)

	require.True(t, h.Contains(c))
	c.setFrom(1, 1, nil, FromGoal)
	h.DecreaseKey(c)

	assert.Same(t, c, h.Pop())
	assert.False(t, h.Contains(c))
	assert.Same(t, a, h.Pop())
	assert.Same(t, b, h.Pop())
}

func TestHeapIndexTracking(t *testing.T) {
	h := newHeap(FromStart)
	nodes := make([]*BiNode, 50)
	rng := rand.New(rand.NewSource(7))
	for i := range nodes {
		nodes[i] = openNode(i, 0, 0, rng.Float64()*100, FromStart)
		h.Push(nodes[i])
	}

	// Every on-heap node's recorded slot must point back at itself.
	for i, n := range h.nodes {
		require.Equal(t, i, n.states[FromStart].heapIdx)
	}

	want := make([]float64, len(nodes))
	for i, n := range nodes {
		want[i] = n.F(FromStart)
	}
	sort.Float64s(want)

	for _, wf := range want {
		n := h.Pop()
		assert.InDelta(t, wf, n.F(FromStart), 0)
		assert.Equal(t, -1, n.states[FromStart].heapIdx)
	}
}

func TestHeapDirectionsIndependent(t *testing.T) {
	n := newBiNode(3, 3, 3)
	n.setFrom(1, 1, nil, FromStart)
	n.setFrom(2, 2, nil, FromGoal)

	hs := newHeap(FromStart)
	hg := newHeap(FromGoal)
	hs.Push(n)
	hg.Push(n)

	require.True(t, hs.Contains(n))
	require.True(t, hg.Contains(n))

	hs.Pop()
	assert.False(t, hs.Contains(n))
	assert.True(t, hg.Contains(n))
}
