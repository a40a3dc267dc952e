// Package colortree searches complementarity assignments of a painted
// lattice for one minimizing the number of distinct unit types.
//
// What:
//
//   - Every absolute color induces a set of voxels carrying it and, per
//     voxel, a sign. Flipping one voxel's sign forces matching flips
//     across every bond partner sharing the color, transitively, so the
//     legal configurations of a color are generated from the as-painted
//     default plus all subset flips propagated through partner links.
//   - Optimize reduces each color independently (keep only the
//     configurations that minimize the unique-origami count when
//     applied in isolation), then evaluates the cross-product of the
//     reduced sets. Whenever a strictly better global assignment is
//     found it becomes the new default and the whole reduction
//     restarts, shrinking the search before continuing.
//
// The search is exhaustive within the reduced per-color sets but not
// guaranteed optimal globally. Cross-products larger than the
// configured combination budget are truncated deterministically; the
// result never regresses below the as-painted baseline either way.
//
// The lattice is mutated during the search and left in the best
// configuration found.
package colortree
