package heuristic

import (
	"math"

	"github.com/hupe1980/tracego/model"
)

// Heuristic estimates the remaining cost-to-goal as a physical distance.
// Implementations must be pure, non-negative and never overestimate.
type Heuristic interface {
	EstimateCostToGoal(sourceX, sourceY, sourceZ, targetX, targetY, targetZ int) float64
}

// Euclidean is the physically-scaled straight-line distance between two
// voxel coordinates. It is admissible and consistent.
type Euclidean struct {
	cal model.Calibration
}

// NewEuclidean returns a Euclidean heuristic using the given voxel spacing.
func NewEuclidean(cal model.Calibration) *Euclidean {
	return &Euclidean{cal: cal}
}

// EstimateCostToGoal implements Heuristic.
func (e *Euclidean) EstimateCostToGoal(sourceX, sourceY, sourceZ, targetX, targetY, targetZ int) float64 {
	dx := float64(targetX-sourceX) * e.cal.X
	dy := float64(targetY-sourceY) * e.cal.Y
	dz := float64(targetZ-sourceZ) * e.cal.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dijkstra is the zero heuristic: the search degenerates to (bidirectional)
// Dijkstra. Trivially admissible; useful as a baseline in tests.
type Dijkstra struct{}

// NewDijkstra returns the zero heuristic.
func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

// EstimateCostToGoal implements Heuristic.
func (d *Dijkstra) EstimateCostToGoal(_, _, _, _, _, _ int) float64 {
	return 0
}
