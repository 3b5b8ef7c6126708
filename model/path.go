package model

// Path is an ordered polyline of calibrated points from start to goal.
// It is immutable once built: the search core produces it exactly once and
// never mutates it afterwards.
type Path struct {
	points []Point
	length float64
	unit   string
}

// NewPath builds a Path from calibrated points, collapsing duplicate adjacent
// points. The cumulative Euclidean length is computed eagerly.
func NewPath(points []Point, unit string) *Path {
	kept := make([]Point, 0, len(points))
	for _, pt := range points {
		if n := len(kept); n > 0 && kept[n-1] == pt {
			continue
		}
		kept = append(kept, pt)
	}

	var length float64
	for i := 1; i < len(kept); i++ {
		length += kept[i-1].DistanceTo(kept[i])
	}

	return &Path{points: kept, length: length, unit: unit}
}

// Len returns the number of points on the path.
func (p *Path) Len() int {
	return len(p.points)
}

// PointAt returns the i-th point, start first.
func (p *Path) PointAt(i int) Point {
	return p.points[i]
}

// Points returns a copy of the point sequence.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Length returns the physical path length: the sum of Euclidean distances
// between consecutive points.
func (p *Path) Length() float64 {
	return p.length
}

// Unit returns the spacing unit the points are expressed in.
func (p *Path) Unit() string {
	return p.unit
}
