package searchimage

// Array is the dense SearchImage backend: a width×height backing slice with
// O(1) access. Appropriate when image dimensions are modest, since it
// allocates the full plane up front.
type Array[V comparable] struct {
	width int
	nodes []V
}

// NewArray returns an empty dense backend for a width×height slice.
func NewArray[V comparable](width, height int) *Array[V] {
	return &Array[V]{
		width: width,
		nodes: make([]V, width*height),
	}
}

// Value implements SearchImage.
func (a *Array[V]) Value(x, y int) V {
	return a.nodes[y*a.width+x]
}

// SetValue implements SearchImage.
func (a *Array[V]) SetValue(x, y int, v V) {
	a.nodes[y*a.width+x] = v
}

// Each implements SearchImage. Unwritten cells are skipped so iteration
// matches the sparse backends.
func (a *Array[V]) Each(fn func(v V)) {
	var zero V
	for _, v := range a.nodes {
		if v != zero {
			fn(v)
		}
	}
}
