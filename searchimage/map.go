package searchimage

// Map is the single-level sparse SearchImage backend: one hash map keyed by
// a pairing of the two coordinates, so no composite key object is allocated
// per access. Amortized O(1), low memory at sparse occupancy.
type Map[V comparable] struct {
	nodes map[uint64]V
}

// NewMap returns an empty hash-map backend.
func NewMap[V comparable]() *Map[V] {
	return &Map[V]{nodes: make(map[uint64]V)}
}

// pairingKey combines two non-negative coordinates into one collision-free
// key (Szudzik, http://szudzik.com/ElegantPairing.pdf), widened to avoid
// overflow for any realistic image dimension.
func pairingKey(x, y int) uint64 {
	a, b := uint64(x), uint64(y)
	if a >= b {
		return a*a + a + b
	}
	return a + b*b
}

// Value implements SearchImage.
func (m *Map[V]) Value(x, y int) V {
	return m.nodes[pairingKey(x, y)]
}

// SetValue implements SearchImage.
func (m *Map[V]) SetValue(x, y int, v V) {
	m.nodes[pairingKey(x, y)] = v
}

// Each implements SearchImage.
func (m *Map[V]) Each(fn func(v V)) {
	for _, v := range m.nodes {
		fn(v)
	}
}

// Len returns the number of stored values.
func (m *Map[V]) Len() int {
	return len(m.nodes)
}
