// Package search implements the best-first path-search engines of tracego.
//
// BiSearch runs the NBA*-style bidirectional search described in Pijls &
// Post, "Yet another bidirectional algorithm for shortest paths" (2009):
// two A* frontiers grow from the start and the goal voxel, pruned against
// the best combined path length seen so far, until the cheapest meeting
// node is proven optimal. Tracer is the plain single-frontier A* used as a
// reference and for callers that want early goal termination.
//
// Both engines are deterministic: identical inputs produce identical paths
// and identical node-visit statistics.
package search
