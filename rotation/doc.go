// Package rotation defines the symmetry-operation set used for voxel
// neighborhood comparison and bond-pattern transfer.
//
// What:
//
//   - Op enumerates the identity ("translation"), the nine single-axis
//     rotations (90/180/270° about x, y, z), and all compositions of two
//     single-axis rotations on different axes (same-axis doubles are
//     redundant with singles and excluded) — 37 labeled operations.
//   - Every Op is an exact integer 3×3 matrix acting on euclidean (x,y,z)
//     vectors: no floating point, no rounding.
//   - Apply rotates a direction vector; TransformCube rotates an odd-sided
//     surroundings cube about its center so that the cell at offset v moves
//     to offset M·v.
//
// Why:
//
//   - The symmetry table tests "A's surroundings rotated by op equal B's",
//     and the painter then copies A's bond at direction d onto B's bond at
//     direction M·d. Using one matrix for both keeps the two views of an
//     operation consistent by construction.
//
// Determinism:
//
//   - Ops() returns a canonical order: translation, singles in fixed
//     axis-then-angle order, then doubles sorted by label. Symlists and
//     therefore painting inherit this order.
//
// Errors:
//
//   - ErrUnknownOp: a label names no registered operation.
package rotation
