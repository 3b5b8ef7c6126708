// Package cost provides the pluggable step-cost strategies used by the
// search engines.
//
// A Cost converts the intensity at a candidate voxel into a per-unit-distance
// traversal cost in (0, +inf). MinStepCost is the smallest cost the strategy
// can ever produce; the engines scale the heuristic estimate by it so the
// estimate stays admissible.
//
// Strategies mirror the classical neurite-tracing cost models:
//
//   - Reciprocal: brighter voxels are cheaper (1 / rescaled intensity)
//   - Difference / DifferenceSq: darker voxels are linearly / quadratically
//     more expensive
//   - OneMinusErf: complementary error function of the intensity z-score
//   - Tubeness: reciprocal of a precomputed vesselness measure
package cost
