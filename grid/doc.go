// Package grid models the 3D integer material field a voxel lattice is
// built from, with periodic (toroidal) semantics.
//
// What:
//
//   - Grid wraps a rectangular [][][]int indexed [z][y][x]; value 0 = empty.
//   - Detects whether a design is already a "unit cell" (first/last layer
//     identical along every axis) and trims the duplicated boundary to the
//     minimal repeating cell, or wrap-pads a minimal cell to its unit cell.
//   - Tiles the minimal cell periodically (always an odd repeat count per
//     axis upstream, so one copy sits exactly centered).
//   - Encodes/decodes a Grid to a compact binary form (zstd payload,
//     xxhash64 checksum) that round-trips shape and values exactly.
//
// Why:
//
//   - The minimal repeating cell is the sole persisted artifact of the
//     coloring pipeline; everything downstream (surroundings windows,
//     symmetry tables, painting) is derived from it.
//
// Complexity:
//
//   - New / Clone / Equal / Trim / WrapPad: O(N) for N cells.
//   - Tile: O(N·r³) for repeat counts r.
//   - Encode / Decode: O(N).
//
// Errors:
//
//   - ErrEmptyGrid: input has no layers, rows, or columns.
//   - ErrNonRectangular: rows or layers of differing lengths.
//   - ErrCodecFormat: encoded bytes are not a valid grid stream.
//   - ErrCodecChecksum: encoded payload fails its integrity check.
package grid
