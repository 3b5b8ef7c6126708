package model

import (
	"fmt"
	"math"
	"time"
)

// Voxel is an integer image coordinate.
type Voxel struct {
	X, Y, Z int
}

// String returns a string representation of the Voxel.
func (v Voxel) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Point is a calibrated physical coordinate in spacing units.
type Point struct {
	X, Y, Z float64
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	dz := o.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Calibration holds the physical voxel spacing per axis and its unit.
// A zero spacing on any axis is invalid.
type Calibration struct {
	X, Y, Z float64
	Unit    string
}

// DefaultCalibration returns an isotropic 1.0 spacing in "pixel" units.
func DefaultCalibration() Calibration {
	return Calibration{X: 1, Y: 1, Z: 1, Unit: "pixel"}
}

// Valid reports whether all spacings are finite and positive.
func (c Calibration) Valid() bool {
	for _, s := range [3]float64{c.X, c.Y, c.Z} {
		if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
			return false
		}
	}
	return true
}

// PointOf converts a voxel coordinate to a calibrated physical point.
func (c Calibration) PointOf(v Voxel) Point {
	return Point{X: float64(v.X) * c.X, Y: float64(v.Y) * c.Y, Z: float64(v.Z) * c.Z}
}

// MinSpacing returns the smallest per-axis spacing.
func (c Calibration) MinSpacing() float64 {
	return math.Min(c.X, math.Min(c.Y, c.Z))
}

// Diagonal returns the physical length of one voxel's space diagonal.
func (c Calibration) Diagonal() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// Outcome describes how a search ended.
type Outcome int

const (
	// OutcomeComplete means a path was found and proven optimal.
	OutcomeComplete Outcome = iota
	// OutcomeNoPath means both frontiers were exhausted without meeting.
	// This is a normal negative result, not an error. With finite positive
	// step costs over a fully connected voxel grid the frontiers always
	// meet, so the outcome is defensive.
	OutcomeNoPath
	// OutcomeCanceled means the caller canceled the search before completion.
	OutcomeCanceled
	// OutcomeTimedOut means the configured timeout elapsed before completion.
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeNoPath:
		return "no-path"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeTimedOut:
		return "timed-out"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Stats holds diagnostic counters accumulated during one search invocation.
type Stats struct {
	// PointsConsidered is the total number of nodes that entered either
	// frontier: open + closed across both directions.
	PointsConsidered int64
	// OpenFromStart / OpenFromGoal are the frontier sizes at the end of the run.
	OpenFromStart int64
	OpenFromGoal  int64
	// ClosedFromStart / ClosedFromGoal count finalized nodes per direction.
	ClosedFromStart int64
	ClosedFromGoal  int64
	// Loops is the number of main-loop iterations executed.
	Loops int64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Result is what every search entry point returns. Path is nil unless
// Outcome is OutcomeComplete.
type Result struct {
	Path    *Path
	Outcome Outcome
	Stats   Stats
}
