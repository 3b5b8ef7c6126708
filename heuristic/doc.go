// Package heuristic provides the admissible distance estimates used by the
// A*-style search engines.
//
// The engines multiply an estimate by the cost strategy's MinStepCost, so an
// estimate only needs to never overestimate the physical distance to the
// target for the combined heuristic to stay admissible and consistent.
package heuristic
