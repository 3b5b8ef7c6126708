package searchimage

import "fmt"

// SearchImage maps an integer (x, y) coordinate to a node value V within one
// z-slice. V is a pointer type in practice; a key that was never stored
// yields the zero value (nil), never a default-constructed node.
type SearchImage[V comparable] interface {
	// Value returns the node stored at (x, y), or the zero value when the
	// key was never written.
	Value(x, y int) V

	// SetValue stores a node at (x, y), replacing any prior value.
	SetValue(x, y int, v V)

	// Each calls fn for every stored value. Order is unspecified.
	Each(fn func(v V))
}

// Supplier creates empty SearchImage instances for the slices of a Stack.
type Supplier[V comparable] func() SearchImage[V]

// Type selects a SearchImage backend.
type Type int

const (
	// TypeMap is the default: a single pairing-keyed hash map.
	TypeMap Type = iota
	// TypeArray is a dense width×height array.
	TypeArray
	// TypeTable is a two-level row-then-column sparse map.
	TypeTable
)

func (t Type) String() string {
	switch t {
	case TypeMap:
		return "Map"
	case TypeArray:
		return "Array"
	case TypeTable:
		return "Table"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// ForType returns a Supplier producing the requested backend. Width and
// height size the dense array backend; the sparse backends ignore them.
func ForType[V comparable](t Type, width, height int) (Supplier[V], error) {
	switch t {
	case TypeMap:
		return func() SearchImage[V] { return NewMap[V]() }, nil
	case TypeArray:
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("searchimage: array backend needs positive dimensions, got %dx%d", width, height)
		}
		return func() SearchImage[V] { return NewArray[V](width, height) }, nil
	case TypeTable:
		return func() SearchImage[V] { return NewTable[V]() }, nil
	default:
		return nil, fmt.Errorf("searchimage: unrecognized backend type: %v", t)
	}
}
