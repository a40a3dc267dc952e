// Package export renders a colored lattice for external consumers.
//
// What:
//
//   - Table flattens the lattice into one row per voxel (id, material,
//     coordinates, then one column per bond direction) showing either
//     color values or role labels. ReadTable round-trips a color table
//     back onto a freshly built lattice.
//   - GLB builds a binary-glTF document with one cube per voxel, face
//     tints derived from bond colors, for the external visualizer.
//     WriteGLB saves it to disk.
//
// Errors:
//
//   - ErrBadTable: a table's shape or cells do not match the lattice.
//   - lattice errors surface unwrapped from the underlying queries.
package export
