// Package model defines core types shared by the tracego search core.
//
// # Coordinate Types
//
//   - Voxel: integer image coordinate (x, y, z)
//   - Point: calibrated physical coordinate in spacing units
//   - Calibration: per-axis voxel spacing and the physical unit string
//
// # Result Types
//
//   - Path: immutable ordered polyline of calibrated points
//   - Outcome: how a search ended (complete, no path, canceled, timed out)
//   - Stats: diagnostic counters accumulated during a search
//   - Result: Path + Outcome + Stats returned by every search entry point
package model
