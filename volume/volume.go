package volume

import "math"

// Volume is a read-only random-access intensity image. Coordinates are
// bounded by [0,Width)×[0,Height)×[0,Depth); callers are responsible for
// staying in bounds.
type Volume interface {
	Intensity(x, y, z int) float64
	Width() int
	Height() int
	Depth() int
}

// Dense is a float32-backed in-memory Volume.
type Dense struct {
	width, height, depth int
	data                 []float32
}

// NewDense allocates a zero-filled volume with the given dimensions.
// Dimensions must be positive; depth 1 denotes a single-slice (2D) image.
func NewDense(width, height, depth int) *Dense {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("volume: dimensions must be positive")
	}
	return &Dense{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]float32, width*height*depth),
	}
}

// Intensity returns the stored value at (x, y, z).
func (d *Dense) Intensity(x, y, z int) float64 {
	return float64(d.data[(z*d.height+y)*d.width+x])
}

// Set stores a value at (x, y, z).
func (d *Dense) Set(x, y, z int, v float64) {
	d.data[(z*d.height+y)*d.width+x] = float32(v)
}

// Width returns the x dimension.
func (d *Dense) Width() int { return d.width }

// Height returns the y dimension.
func (d *Dense) Height() int { return d.height }

// Depth returns the z dimension.
func (d *Dense) Depth() int { return d.depth }

// Stats holds one-pass intensity statistics over a volume, the same set the
// cost strategies are parameterized by.
type Stats struct {
	Min, Max, Mean, StdDev float64
}

// ComputeStats scans the whole volume once and returns its statistics.
func ComputeStats(v Volume) Stats {
	var (
		n     int64
		sum   float64
		sumSq float64
		mn    = math.Inf(1)
		mx    = math.Inf(-1)
	)

	for z := 0; z < v.Depth(); z++ {
		for y := 0; y < v.Height(); y++ {
			for x := 0; x < v.Width(); x++ {
				val := v.Intensity(x, y, z)
				sum += val
				sumSq += val * val
				if val < mn {
					mn = val
				}
				if val > mx {
					mx = val
				}
				n++
			}
		}
	}

	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return Stats{Min: mn, Max: mx, Mean: mean, StdDev: math.Sqrt(variance)}
}

// InBounds reports whether (x, y, z) addresses a voxel of v.
func InBounds(v Volume, x, y, z int) bool {
	return x >= 0 && x < v.Width() &&
		y >= 0 && y < v.Height() &&
		z >= 0 && z < v.Depth()
}
