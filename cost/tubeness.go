package cost

import "github.com/hupe1980/tracego/hessian"

// TubenessCost minimum cost per unit distance: measures are capped at 256,
// so 1/256 would be the theoretical floor; the reference value of 1/60 keeps
// the heuristic conservative for typical vessel contrast.
const tubenessMinStepCost = 1.0 / 60.0

// The vesselness measure when no tube-like structure was detected. Bounds
// the cost at 1/(0.2*multiplier) instead of +inf.
const noStructureMeasure = 0.2

// Tubeness derives step cost from a precomputed vesselness cache: voxels on
// plausible tube centerlines are cheap. The cache is an injected read-only
// capability, so synthetic caches work in tests.
type Tubeness struct {
	cache      *hessian.Tubeness
	multiplier float64
}

// NewTubeness returns a Tubeness cost over the given cache. A non-positive
// multiplier selects the default 256/max(cache), matching the behavior of
// the interactive tracer.
func NewTubeness(cache *hessian.Tubeness, multiplier float64) *Tubeness {
	if multiplier <= 0 {
		if mx := cache.Max(); mx > 0 {
			multiplier = 256 / mx
		} else {
			multiplier = 1
		}
	}
	return &Tubeness{cache: cache, multiplier: multiplier}
}

// CostMovingToXYZ implements CoordCost.
func (t *Tubeness) CostMovingToXYZ(x, y, z int) float64 {
	measure := t.cache.ValueAt(x, y, z)
	if measure == 0 {
		measure = noStructureMeasure
	}
	measure *= t.multiplier
	if measure > 256 {
		measure = 256
	}
	return 1 / measure
}

// CostMovingTo implements Cost. Tubeness is coordinate-addressed; the
// intensity form treats its argument as a raw measure and is only meaningful
// for contract checks.
func (t *Tubeness) CostMovingTo(measure float64) float64 {
	if measure == 0 {
		measure = noStructureMeasure
	}
	measure *= t.multiplier
	if measure > 256 {
		measure = 256
	}
	return 1 / measure
}

// MinStepCost implements Cost.
func (t *Tubeness) MinStepCost() float64 {
	return tubenessMinStepCost
}
