// Package volume defines the read-only intensity accessor consumed by the
// search core, plus a dense in-memory implementation and one-pass statistics.
//
// The search core never mutates a Volume; implementations only need to
// provide random access by integer coordinate within
// [0,Width)×[0,Height)×[0,Depth).
package volume
