package testutil

import "github.com/hupe1980/tracego/volume"

// Uniform returns a volume where every voxel has the same intensity.
// On a uniform image the cheapest path is the geometric shortest path,
// which makes expected path lengths easy to compute by hand.
func Uniform(width, height, depth int, value float64) *volume.Dense {
	vol := volume.NewDense(width, height, depth)
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				vol.Set(x, y, z, value)
			}
		}
	}
	return vol
}

// CrossBarrier returns a 20x20 single-slice image that is bright (255)
// everywhere except for a dark (1) cross through the center, with a
// one-pixel gap in each arm. Paths between opposite corners must thread
// the gaps, so cost strategies that model structure explore fewer voxels
// than plain intensity costs.
func CrossBarrier() *volume.Dense {
	const size = 20
	vol := Uniform(size, size, 1, 255)
	mid := size / 2
	for i := 0; i < size; i++ {
		vol.Set(mid, i, 0, 1)
		vol.Set(i, mid, 0, 1)
	}
	// Gaps the path can thread.
	vol.Set(mid, 3, 0, 255)
	vol.Set(16, mid, 0, 255)
	return vol
}

// Blocked returns a bright image split by a zero-intensity wall at x=mid.
// Costs are always finite and positive, so the wall is very expensive
// rather than impassable: an optimal path crosses it exactly once.
func Blocked(width, height, depth int) *volume.Dense {
	vol := Uniform(width, height, depth, 255)
	mid := width / 2
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			vol.Set(mid, y, z, 0)
		}
	}
	return vol
}

// Line3D returns an otherwise dark volume with a bright axis-aligned line
// at the given y and z, running the full width. Useful for validating that
// tubeness-guided searches follow filaments.
func Line3D(width, height, depth, y, z int, bright, dark float64) *volume.Dense {
	vol := Uniform(width, height, depth, dark)
	for x := 0; x < width; x++ {
		vol.Set(x, y, z, bright)
	}
	return vol
}

// UnitCost charges one unit per step regardless of intensity. Searches
// using it find geometrically shortest paths, which makes optimality easy
// to verify against brute force.
type UnitCost struct{}

// CostMovingTo implements cost.Cost.
func (UnitCost) CostMovingTo(float64) float64 { return 1 }

// MinStepCost implements cost.Cost.
func (UnitCost) MinStepCost() float64 { return 1 }

// WallCost charges a huge finite cost for zero-intensity voxels and unit
// cost everywhere else. Useful for asserting that paths avoid walls except
// where forced through.
type WallCost struct{}

// CostMovingTo implements cost.Cost.
func (WallCost) CostMovingTo(valueAtNewPoint float64) float64 {
	if valueAtNewPoint == 0 {
		return 1e9
	}
	return 1
}

// MinStepCost implements cost.Cost.
func (WallCost) MinStepCost() float64 { return 1 }
