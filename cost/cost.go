package cost

import (
	"fmt"
	"math"
)

// Cost converts local image evidence into a per-unit-distance traversal cost.
//
// Implementations must be pure: identical inputs yield identical outputs, and
// every returned value must be finite and strictly positive. The engines
// validate this and fail fast on violations rather than clamping silently.
type Cost interface {
	// CostMovingTo returns the cost of stepping onto a voxel whose intensity
	// is valueAtNewPoint.
	CostMovingTo(valueAtNewPoint float64) float64

	// MinStepCost returns the smallest cost per unit distance this strategy
	// can produce. It is the admissibility scale for heuristic estimates.
	MinStepCost() float64
}

// CoordCost is a Cost addressed by voxel coordinate instead of raw intensity.
// It is implemented by strategies backed by a precomputed per-voxel cache,
// e.g. Tubeness.
type CoordCost interface {
	Cost

	// CostMovingToXYZ returns the cost of stepping onto voxel (x, y, z).
	CostMovingToXYZ(x, y, z int) float64
}

// For 0 intensity, use half the smallest possible rescaled value.
const reciprocalFudge = 255 * 0.5 * math.SmallestNonzeroFloat32 / math.MaxFloat32

// rescale255 maps an intensity to the 0..255 range used by the built-in
// strategies. A degenerate range (uniform image) maps every voxel to 255 so
// all steps stay equally cheap instead of dividing by zero.
func rescale255(v, min, max float64) float64 {
	if max <= min {
		return 255
	}
	s := 255 * (v - min) / (max - min)
	if s > 255 {
		return 255
	}
	return s
}

// Reciprocal is the default intensity cost: values are rescaled to 0..255
// using the image min/max and the cost is the reciprocal, so bright voxels
// are cheap to traverse.
type Reciprocal struct {
	min, max float64
}

// NewReciprocal returns a Reciprocal cost for an image with the given
// intensity range.
func NewReciprocal(min, max float64) *Reciprocal {
	return &Reciprocal{min: min, max: max}
}

// CostMovingTo implements Cost.
func (r *Reciprocal) CostMovingTo(valueAtNewPoint float64) float64 {
	v := rescale255(valueAtNewPoint, r.min, r.max)
	if v <= 0 {
		v = reciprocalFudge
	}
	return 1.0 / v
}

// MinStepCost implements Cost.
func (r *Reciprocal) MinStepCost() float64 {
	return 1.0 / 255.0
}

// Difference charges linearly more for darker voxels: 256 minus the
// rescaled 0..255 intensity.
type Difference struct {
	min, max float64
}

// NewDifference returns a Difference cost for an image with the given
// intensity range.
func NewDifference(min, max float64) *Difference {
	return &Difference{min: min, max: max}
}

// CostMovingTo implements Cost.
func (d *Difference) CostMovingTo(valueAtNewPoint float64) float64 {
	return 256 - rescale255(valueAtNewPoint, d.min, d.max)
}

// MinStepCost implements Cost.
func (d *Difference) MinStepCost() float64 {
	return 1
}

// DifferenceSq is Difference squared, penalizing dark voxels harder.
type DifferenceSq struct {
	Difference
}

// NewDifferenceSq returns a DifferenceSq cost for an image with the given
// intensity range.
func NewDifferenceSq(min, max float64) *DifferenceSq {
	return &DifferenceSq{Difference{min: min, max: max}}
}

// CostMovingTo implements Cost.
func (d *DifferenceSq) CostMovingTo(valueAtNewPoint float64) float64 {
	c := d.Difference.CostMovingTo(valueAtNewPoint)
	return c * c
}

// MinStepCost implements Cost.
func (d *DifferenceSq) MinStepCost() float64 {
	return 1
}

const erfStepCostLowerBound = 1e-60

// OneMinusErf scores a voxel by the complementary error function of its
// intensity z-score: statistically bright voxels approach zero cost.
// The z-fudge multiplier sharpens or relaxes the transition.
type OneMinusErf struct {
	max, mean, stdDev      float64
	zFudge                 float64
	minCostPerUnitDistance float64
}

// NewOneMinusErf returns a OneMinusErf cost parameterized by the image
// maximum, mean and standard deviation. The z-fudge defaults to 1.
func NewOneMinusErf(max, mean, stdDev float64) *OneMinusErf {
	o := &OneMinusErf{max: max, mean: mean, stdDev: stdDev, zFudge: 1}
	o.minCostPerUnitDistance = o.computeMinStepCost()
	return o
}

// CostMovingTo implements Cost.
func (o *OneMinusErf) CostMovingTo(valueAtNewPoint float64) float64 {
	return math.Erfc(o.zFudge * o.zScore(valueAtNewPoint))
}

// MinStepCost implements Cost.
func (o *OneMinusErf) MinStepCost() float64 {
	return o.minCostPerUnitDistance
}

// SetZFudge changes the z-score multiplier. The minimum step cost depends on
// it and is recomputed.
func (o *OneMinusErf) SetZFudge(zFudge float64) {
	o.zFudge = zFudge
	o.minCostPerUnitDistance = o.computeMinStepCost()
}

// ZFudge returns the current z-score multiplier.
func (o *OneMinusErf) ZFudge() float64 {
	return o.zFudge
}

func (o *OneMinusErf) zScore(v float64) float64 {
	return (v - o.mean) / o.stdDev
}

func (o *OneMinusErf) computeMinStepCost() float64 {
	return math.Erfc(o.zFudge*o.zScore(o.max)) + erfStepCostLowerBound
}

// Type selects a built-in intensity cost strategy.
type Type int

const (
	TypeReciprocal Type = iota
	TypeDifference
	TypeDifferenceSq
	TypeOneMinusErf
)

func (t Type) String() string {
	switch t {
	case TypeReciprocal:
		return "Reciprocal"
	case TypeDifference:
		return "Difference"
	case TypeDifferenceSq:
		return "DifferenceSq"
	case TypeOneMinusErf:
		return "OneMinusErf"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// ImageStats is the subset of image statistics the built-in strategies are
// parameterized by.
type ImageStats struct {
	Min, Max, Mean, StdDev float64
}

// Provider returns the cost strategy for the given type, parameterized by
// image statistics.
func Provider(t Type, stats ImageStats) (Cost, error) {
	switch t {
	case TypeReciprocal:
		return NewReciprocal(stats.Min, stats.Max), nil
	case TypeDifference:
		return NewDifference(stats.Min, stats.Max), nil
	case TypeDifferenceSq:
		return NewDifferenceSq(stats.Min, stats.Max), nil
	case TypeOneMinusErf:
		return NewOneMinusErf(stats.Max, stats.Mean, stats.StdDev), nil
	default:
		return nil, fmt.Errorf("unsupported cost type: %v", t)
	}
}
