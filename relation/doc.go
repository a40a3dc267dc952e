// Package relation classifies how two bonds, or two whole voxels under a
// rotation, relate by color.
//
// Bond level: two bonds are Equal when they carry the same color, Loose
// when either side is blank (no information yet), Negation when their
// colors are exact complements, and None otherwise.
//
// Voxel level: the first voxel's bonds are rotated by the given
// operation and compared slot by slot. Any None slot makes the whole
// relation None; otherwise any Negation slot makes it Negation,
// otherwise any Equal slot makes it Equal, and an all-Loose comparison
// is Loose (nothing to commit to either way). Voxels of different
// materials are always None.
package relation
