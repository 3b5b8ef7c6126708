package search

import "math"

// State is the per-direction lifecycle of a node: Free until discovered,
// Open while queued, Closed once its cost is final for that direction.
// Closed is terminal; a consistent heuristic never reopens a node.
type State uint8

const (
	Free State = iota
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Free:
		return "FREE"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	default:
		return "INVALID"
	}
}

// Dir selects one of the two search directions.
type Dir uint8

const (
	// FromStart is the frontier growing out of the start voxel.
	FromStart Dir = 0
	// FromGoal is the frontier growing out of the goal voxel.
	FromGoal Dir = 1
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir {
	return d ^ 1
}

func (d Dir) String() string {
	if d == FromStart {
		return "from-start"
	}
	return "from-goal"
}

// dirState is the search state one frontier keeps for a voxel: cost so far,
// total estimate, predecessor link and heap bookkeeping. The predecessor
// chain followed back to the frontier's seed is acyclic and monotonically
// non-increasing in g.
type dirState struct {
	g           float64
	f           float64
	predecessor *BiNode
	heapIdx     int
	state       State
}

// BiNode is the per-voxel search record. The same physical voxel can be
// visited by both frontiers at different times with different costs, so it
// carries two independent state records indexed by Dir; the frontiers never
// read each other's predecessor links.
type BiNode struct {
	X, Y, Z int

	states [2]dirState
}

// newBiNode returns a node at (x, y, z) that is Free in both directions.
func newBiNode(x, y, z int) *BiNode {
	n := &BiNode{X: x, Y: y, Z: z}
	for d := range n.states {
		n.states[d] = dirState{
			g:       math.Inf(1),
			f:       math.Inf(1),
			heapIdx: -1,
		}
	}
	return n
}

// G returns the cost-so-far for the given direction.
func (n *BiNode) G(d Dir) float64 {
	return n.states[d].g
}

// F returns the total cost estimate for the given direction.
func (n *BiNode) F(d Dir) float64 {
	return n.states[d].f
}

// State returns the lifecycle state for the given direction.
func (n *BiNode) State(d Dir) State {
	return n.states[d].state
}

// Predecessor returns the predecessor link for the given direction, nil at
// the frontier's seed.
func (n *BiNode) Predecessor(d Dir) *BiNode {
	return n.states[d].predecessor
}

// setFrom updates the relaxable fields for one direction in a single step,
// keeping f = g + h consistent by construction.
func (n *BiNode) setFrom(g, f float64, predecessor *BiNode, d Dir) {
	st := &n.states[d]
	st.g = g
	st.f = f
	st.predecessor = predecessor
}
