// Package symmetry computes, for every ordered voxel pair (a, b), the
// set of rotation operations that carry a's periodic surroundings onto
// b's.
//
// What:
//
//   - Surroundings tiles the minimal cell enough times per axis that a
//     centered odd cube of materials (the window) around any voxel is
//     fully populated; the window side is 2·⌊maxDim/2⌋+1.
//   - Table evaluates every operation in the rotation registry against
//     every ordered pair: op ∈ Symlist(a, b) iff rotating a's window by
//     op yields b's window cell for cell. Windows are prefiltered by
//     64-bit content digests before the full comparison.
//
// Why:
//
//   - The painter's map-painting and the unique-origami count both ask
//     "which rotations make these two voxels interchangeable"; answering
//     it once, up front, keeps the painting loops free of geometry.
//
// Determinism:
//
//   - Symlist returns operations in canonical registry order, and
//     Symvoxels returns ids ascending. Two computations over equal
//     lattices produce equal tables.
//
// Complexity: O(ops · n² · s³) for n voxels and window side s; the
// digest prefilter removes the s³ factor from almost all non-symmetric
// pairs.
//
// Errors:
//
//   - ErrNilLattice: Compute received a nil lattice.
package symmetry
