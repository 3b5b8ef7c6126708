package hessian

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/tracego/model"
	"github.com/hupe1980/tracego/volume"
)

// ErrNilVolume is returned when the analyzer is constructed without a volume.
var ErrNilVolume = errors.New("hessian: volume must not be nil")

// Analyzer computes tubeness measures for one volume at one physical scale.
type Analyzer struct {
	vol   volume.Volume
	cal   model.Calibration
	sigma float64
}

// NewAnalyzer returns an Analyzer for vol at scale sigma (physical units).
// A non-positive sigma defaults to the minimum voxel spacing, the smallest
// scale the sampling can support.
func NewAnalyzer(vol volume.Volume, cal model.Calibration, sigma float64) (*Analyzer, error) {
	if vol == nil {
		return nil, ErrNilVolume
	}
	if !cal.Valid() {
		return nil, errors.New("hessian: invalid calibration")
	}
	if sigma <= 0 {
		sigma = cal.MinSpacing()
	}
	return &Analyzer{vol: vol, cal: cal, sigma: sigma}, nil
}

// Tubeness computes the per-voxel vesselness cache. Slices are processed in
// parallel; ctx cancels the computation.
func (a *Analyzer) Tubeness(ctx context.Context) (*Tubeness, error) {
	width, height, depth := a.vol.Width(), a.vol.Height(), a.vol.Depth()

	smoothed := gaussianSmooth(a.vol, a.cal, a.sigma)

	t := &Tubeness{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]float32, width*height*depth),
	}

	// Normalize the filter response so measures compare fairly across scales.
	norm := a.sigma * a.sigma
	is2D := depth == 1

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for z := 0; z < depth; z++ {
		z := z
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Per-goroutine eigen scratch.
			dim := 3
			if is2D {
				dim = 2
			}
			sym := mat.NewSymDense(dim, nil)
			var es mat.EigenSym
			vals := make([]float64, dim)

			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					var measure float64
					if is2D {
						hxx, hyy, hxy := smoothed.hessian2D(x, y, a.cal)
						sym.SetSym(0, 0, hxx)
						sym.SetSym(0, 1, hxy)
						sym.SetSym(1, 1, hyy)
						if !es.Factorize(sym, true) {
							return errors.New("hessian: eigen factorization failed")
						}
						es.Values(vals)
						measure = tubeness2D(vals, norm)
					} else {
						hxx, hyy, hzz, hxy, hxz, hyz := smoothed.hessian3D(x, y, z, a.cal)
						sym.SetSym(0, 0, hxx)
						sym.SetSym(0, 1, hxy)
						sym.SetSym(0, 2, hxz)
						sym.SetSym(1, 1, hyy)
						sym.SetSym(1, 2, hyz)
						sym.SetSym(2, 2, hzz)
						if !es.Factorize(sym, true) {
							return errors.New("hessian: eigen factorization failed")
						}
						es.Values(vals)
						measure = tubeness3D(vals, norm)
					}
					t.data[(z*height+y)*width+x] = float32(measure)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, v := range t.data {
		if float64(v) > t.max {
			t.max = float64(v)
		}
	}
	return t, nil
}

// tubeness2D derives the 2D measure from eigenvalues sorted ascending:
// the absolute value of the larger-magnitude eigenvalue when it is negative.
func tubeness2D(vals []float64, norm float64) float64 {
	e0, e1 := vals[0], vals[1]
	if math.Abs(e0) > math.Abs(e1) {
		e1 = e0
	}
	if e1 < 0 {
		return norm * math.Abs(e1)
	}
	return 0
}

// tubeness3D derives the 3D measure from eigenvalues sorted by magnitude:
// sqrt(e1*e2) over the two largest-magnitude eigenvalues when both are
// negative.
func tubeness3D(vals []float64, norm float64) float64 {
	e0, e1, e2 := vals[0], vals[1], vals[2]
	if math.Abs(e0) > math.Abs(e1) {
		e0, e1 = e1, e0
	}
	if math.Abs(e1) > math.Abs(e2) {
		e1, e2 = e2, e1
	}
	if math.Abs(e0) > math.Abs(e1) {
		e1 = e0
	}
	if e1 < 0 && e2 < 0 {
		return norm * math.Sqrt(e1*e2)
	}
	return 0
}

// Tubeness is the precomputed per-voxel vesselness cache. It is read-only
// after construction and safe for concurrent reads.
type Tubeness struct {
	width, height, depth int
	data                 []float32
	max                  float64
}

// NewTubenessFromValues wraps precomputed measures as a cache. Intended for
// synthetic caches in tests; values are indexed (z*height+y)*width+x.
func NewTubenessFromValues(width, height, depth int, values []float32) *Tubeness {
	if len(values) != width*height*depth {
		panic("hessian: values length does not match dimensions")
	}
	t := &Tubeness{width: width, height: height, depth: depth, data: values}
	for _, v := range values {
		if float64(v) > t.max {
			t.max = float64(v)
		}
	}
	return t
}

// ValueAt returns the measure at (x, y, z).
func (t *Tubeness) ValueAt(x, y, z int) float64 {
	return float64(t.data[(z*t.height+y)*t.width+x])
}

// Max returns the largest measure in the cache.
func (t *Tubeness) Max() float64 {
	return t.max
}

// Width returns the x dimension.
func (t *Tubeness) Width() int { return t.width }

// Height returns the y dimension.
func (t *Tubeness) Height() int { return t.height }

// Depth returns the z dimension.
func (t *Tubeness) Depth() int { return t.depth }
