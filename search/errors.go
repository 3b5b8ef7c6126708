package search

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tracego/model"
)

var (
	// ErrNilVolume is returned when no volume was supplied.
	ErrNilVolume = errors.New("search: volume must not be nil")
	// ErrNilCost is returned when no cost strategy was supplied.
	ErrNilCost = errors.New("search: cost strategy must not be nil")
	// ErrNilHeuristic is returned when no heuristic strategy was supplied.
	ErrNilHeuristic = errors.New("search: heuristic strategy must not be nil")
	// ErrInvalidCalibration is returned for non-positive or non-finite spacings.
	ErrInvalidCalibration = errors.New("search: calibration spacings must be finite and positive")
)

// ErrOutOfBounds indicates a start or goal voxel outside the volume.
type ErrOutOfBounds struct {
	Voxel                model.Voxel
	Width, Height, Depth int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("search: voxel %s out of bounds [0,%d)x[0,%d)x[0,%d)",
		e.Voxel, e.Width, e.Height, e.Depth)
}

// ErrCostContract indicates a cost strategy returned a non-positive or
// non-finite value. This is a fatal logic error: clamping it silently would
// mask an incorrect optimality proof, so the offending coordinate and value
// are surfaced instead.
type ErrCostContract struct {
	Voxel model.Voxel
	Value float64
}

func (e *ErrCostContract) Error() string {
	return fmt.Sprintf("search: cost strategy returned %v at %s, want finite positive",
		e.Value, e.Voxel)
}

// ErrHeuristicContract indicates a heuristic strategy returned a negative
// or non-finite estimate.
type ErrHeuristicContract struct {
	Voxel model.Voxel
	Value float64
}

func (e *ErrHeuristicContract) Error() string {
	return fmt.Sprintf("search: heuristic returned %v at %s, want finite non-negative",
		e.Value, e.Voxel)
}

// ErrInconsistentHeuristic indicates a cheaper path was found to a node
// already closed in the same direction, which an admissible consistent
// heuristic cannot produce. Only reported under strict consistency checking;
// otherwise the improvement is defensively ignored.
type ErrInconsistentHeuristic struct {
	Voxel model.Voxel
	Dir   Dir
}

func (e *ErrInconsistentHeuristic) Error() string {
	return fmt.Sprintf("search: cheaper path to closed node %s (%s); heuristic is inconsistent",
		e.Voxel, e.Dir)
}
