package searchimage

import "fmt"

// Stack is the sparse 3D node index for one search direction: an ordered
// sequence of per-z SearchImage slices, each created lazily on first use.
// Exactly one Stack exists per frontier; they are never shared.
type Stack[V comparable] struct {
	depth    int
	slices   []SearchImage[V]
	supplier Supplier[V]
	count    int
}

// NewStack returns a Stack of the given fixed depth whose slices are created
// by supplier.
func NewStack[V comparable](depth int, supplier Supplier[V]) *Stack[V] {
	if depth <= 0 {
		panic(fmt.Sprintf("searchimage: stack depth must be positive, got %d", depth))
	}
	if supplier == nil {
		panic("searchimage: stack supplier must not be nil")
	}
	return &Stack[V]{
		depth:    depth,
		slices:   make([]SearchImage[V], depth),
		supplier: supplier,
	}
}

// Slice returns the SearchImage at z, or nil when the slice was never
// created. A z outside [0, Depth) is a programming error and panics.
func (s *Stack[V]) Slice(z int) SearchImage[V] {
	s.checkZ(z)
	return s.slices[z]
}

// NewSlice creates a fresh, empty slice at z and returns it. Creation is not
// idempotent: calling NewSlice twice for the same z discards the prior
// slice's contents. Callers must call it at most once per z before the
// first write.
func (s *Stack[V]) NewSlice(z int) SearchImage[V] {
	s.checkZ(z)
	if s.slices[z] == nil {
		s.count++
	}
	sl := s.supplier()
	s.slices[z] = sl
	return sl
}

// Depth returns the fixed number of slice positions.
func (s *Stack[V]) Depth() int {
	return s.depth
}

// Len returns the number of slices instantiated so far.
func (s *Stack[V]) Len() int {
	return s.count
}

// Each calls fn for every instantiated slice in ascending z order.
func (s *Stack[V]) Each(fn func(z int, slice SearchImage[V])) {
	for z, sl := range s.slices {
		if sl != nil {
			fn(z, sl)
		}
	}
}

func (s *Stack[V]) checkZ(z int) {
	if z < 0 || z >= s.depth {
		panic(fmt.Sprintf("searchimage: slice index %d out of range [0,%d)", z, s.depth))
	}
}
