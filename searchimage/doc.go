// Package searchimage provides the sparse per-slice node index backing a
// search frontier.
//
// A SearchImage maps an integer (x, y) coordinate to a node value within one
// z-slice. Three interchangeable backends satisfy the same contract:
//
//   - Array: dense width×height backing slice, O(1) access, best for modest
//     image dimensions
//   - Map: single hash map keyed by a Szudzik pairing of the coordinates,
//     lower memory at sparse occupancy
//   - Table: two-level row→column maps with a roaring bitmap of occupied
//     rows, iterable in row order
//
// A Stack is the per-volume collection of lazily instantiated slices, one
// SearchImage per z. The search engines are programmed strictly against the
// SearchImage interface; backend selection is a configuration decision made
// through a Supplier.
package searchimage
