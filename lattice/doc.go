// Package lattice models the static bond graph the coloring algorithm
// mutates in place: voxels on a torus, six directed bonds each.
//
// What:
//
//   - Build derives the minimal repeating cell from any validated grid
//     (trimming a detected unit cell or wrap-padding a minimal design),
//     creates one Voxel per cell in row-major order with sequential ids,
//     and resolves every bond's unique partner through toroidal
//     wrap-around — once, at construction.
//   - Bonds live in an arena indexed (voxel id, direction); partner links
//     are stored as index pairs, so mutation is always "write record at
//     index" with no aliasing hazards.
//   - Bond colors are append-only during painting (SetBond refuses to
//     overwrite); the optimizer uses RepaintComplement, which flips a
//     voxel's bonds of one absolute color together with their partners.
//
// Why:
//
//   - Every downstream stage (symmetry, relation, painting, optimizing)
//     reads or writes this one structure; a single canonical integer
//     handle per voxel keeps those stages free of representation checks.
//
// Invariants:
//
//   - Once both sides of a partner pair are colored, partner.color ==
//     -color. Partner links never change after Build.
//   - Voxel ids are assigned once and never reused.
//
// Errors:
//
//   - ErrNilGrid: Build received a nil grid.
//   - ErrVoxelNotFound: lookup by unknown id or coordinate.
//   - ErrUnresolvedNeighbor: wrap-around lookup failed (internal
//     consistency; unreachable for any validated grid).
//   - ErrRecolor: attempt to overwrite an already-colored bond.
//   - ErrBadDirection: a vector that is not one of the six cardinals.
//   - ErrUncolored: a color query on a lattice with blank bonds.
//   - ErrColorAbsent: the voxel carries no bond of the queried color.
package lattice
