// Package hessian computes Hessian-eigenvalue vesselness ("tubeness")
// measures over an intensity volume.
//
// The analyzer smooths the volume with a separable Gaussian at a chosen
// physical scale, estimates the Hessian matrix at every voxel by central
// differences, and derives a per-voxel tubeness measure from its
// eigenvalues. The result is cached in a Tubeness volume that the cost
// strategies consume as a read-only capability, so the eigen-decomposition
// is never recomputed during search.
package hessian
