package cost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tracego/hessian"
)

func TestReciprocal(t *testing.T) {
	r := NewReciprocal(0, 255)

	assert.InDelta(t, 1.0/255.0, r.CostMovingTo(255), 1e-12)
	assert.InDelta(t, 1.0/127.5, r.CostMovingTo(127.5), 1e-12)
	assert.InDelta(t, 1.0/255.0, r.MinStepCost(), 1e-12)

	// Zero intensity is expensive but still finite and positive.
	atZero := r.CostMovingTo(0)
	assert.True(t, atZero > 0)
	assert.False(t, math.IsInf(atZero, 0))
	assert.InDelta(t, 1.0/reciprocalFudge, atZero, 1e-12*1/reciprocalFudge)
}

func TestReciprocalRescales(t *testing.T) {
	// An image spanning 100..300 maps 300 to 255.
	r := NewReciprocal(100, 300)
	assert.InDelta(t, 1.0/255.0, r.CostMovingTo(300), 1e-12)
	assert.InDelta(t, 1.0/127.5, r.CostMovingTo(200), 1e-12)
	// Values above max clamp to 255 instead of dropping below MinStepCost.
	assert.InDelta(t, 1.0/255.0, r.CostMovingTo(400), 1e-12)
}

func TestReciprocalUniformImage(t *testing.T) {
	// A degenerate intensity range must not divide by zero; every voxel is
	// treated as maximally bright.
	r := NewReciprocal(255, 255)
	assert.InDelta(t, 1.0/255.0, r.CostMovingTo(255), 1e-12)

	d := NewDifference(100, 100)
	assert.InDelta(t, 1.0, d.CostMovingTo(100), 1e-12)
}

func TestDifference(t *testing.T) {
	d := NewDifference(0, 255)
	assert.InDelta(t, 1.0, d.CostMovingTo(255), 1e-12)
	assert.InDelta(t, 256.0, d.CostMovingTo(0), 1e-12)
	assert.InDelta(t, 1.0, d.MinStepCost(), 1e-12)
}

func TestDifferenceSq(t *testing.T) {
	d := NewDifferenceSq(0, 255)
	assert.InDelta(t, 1.0, d.CostMovingTo(255), 1e-12)
	assert.InDelta(t, 256.0*256.0, d.CostMovingTo(0), 1e-12)
	assert.InDelta(t, 1.0, d.MinStepCost(), 1e-12)
}

func TestOneMinusErf(t *testing.T) {
	o := NewOneMinusErf(255, 128, 30)

	// Erfc is monotonically decreasing: brighter voxels are cheaper.
	assert.Less(t, o.CostMovingTo(200), o.CostMovingTo(128))
	assert.Less(t, o.CostMovingTo(128), o.CostMovingTo(50))

	// At the mean the z-score is zero and erfc(0) = 1.
	assert.InDelta(t, 1.0, o.CostMovingTo(128), 1e-12)

	// MinStepCost is the cost at the image max, bounded away from zero.
	assert.InDelta(t, math.Erfc((255.0-128.0)/30.0)+1e-60, o.MinStepCost(), 1e-12)
	assert.True(t, o.MinStepCost() > 0)
}

func TestOneMinusErfZFudge(t *testing.T) {
	o := NewOneMinusErf(255, 128, 30)
	require.InDelta(t, 1.0, o.ZFudge(), 1e-12)

	before := o.MinStepCost()
	o.SetZFudge(0.8)
	assert.InDelta(t, 0.8, o.ZFudge(), 1e-12)
	// A gentler transition raises the cost at the image max.
	assert.Greater(t, o.MinStepCost(), before)
}

func TestProvider(t *testing.T) {
	stats := ImageStats{Min: 0, Max: 255, Mean: 128, StdDev: 30}

	tests := []struct {
		typ  Type
		want any
	}{
		{TypeReciprocal, &Reciprocal{}},
		{TypeDifference, &Difference{}},
		{TypeDifferenceSq, &DifferenceSq{}},
		{TypeOneMinusErf, &OneMinusErf{}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, err := Provider(tt.typ, stats)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}

	_, err := Provider(Type(99), stats)
	assert.Error(t, err)
}

func TestTubeness(t *testing.T) {
	// A 3x1x1 cache with measures 0, 30, 60 and multiplier 2.
	cache := hessian.NewTubenessFromValues(3, 1, 1, []float32{0, 30, 60})
	tb := NewTubeness(cache, 2)

	// Zero measure falls back to the no-structure floor of 0.2 before the
	// multiplier is applied.
	assert.InDelta(t, 1.0/0.4, tb.CostMovingToXYZ(0, 0, 0), 1e-12)
	assert.InDelta(t, 1.0/60.0, tb.CostMovingToXYZ(1, 0, 0), 1e-12)
	assert.InDelta(t, 1.0/120.0, tb.CostMovingToXYZ(2, 0, 0), 1e-12)
	assert.InDelta(t, 1.0/60.0, tb.MinStepCost(), 1e-12)
}

func TestTubenessCapsAt256(t *testing.T) {
	cache := hessian.NewTubenessFromValues(1, 1, 1, []float32{1000})
	tb := NewTubeness(cache, 1)
	assert.InDelta(t, 1.0/256.0, tb.CostMovingToXYZ(0, 0, 0), 1e-12)
}
