package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/tracego/model"
)

func TestEuclidean(t *testing.T) {
	h := NewEuclidean(model.DefaultCalibration())

	assert.InDelta(t, 5.0, h.EstimateCostToGoal(0, 0, 0, 3, 4, 0), 1e-12)
	assert.Zero(t, h.EstimateCostToGoal(7, 7, 7, 7, 7, 7))
	// Symmetric.
	assert.InDelta(t,
		h.EstimateCostToGoal(1, 2, 3, 4, 5, 6),
		h.EstimateCostToGoal(4, 5, 6, 1, 2, 3), 1e-12)
}

func TestEuclideanAnisotropic(t *testing.T) {
	h := NewEuclidean(model.Calibration{X: 1, Y: 1, Z: 5, Unit: "um"})
	// One z step covers 5 physical units.
	assert.InDelta(t, 5.0, h.EstimateCostToGoal(0, 0, 0, 0, 0, 1), 1e-12)
	// In-plane distances are unaffected by z spacing.
	assert.InDelta(t, 5.0, h.EstimateCostToGoal(0, 0, 0, 3, 4, 0), 1e-12)
}

func TestDijkstra(t *testing.T) {
	h := NewDijkstra()
	assert.Zero(t, h.EstimateCostToGoal(0, 0, 0, 100, 100, 100))
}
