// Package meso partitions a lattice's voxels into equivalence groups
// (the mesovoxel) as painting progresses.
//
// What:
//
//   - New seeds one structural group per symmetry-unique voxel, in
//     ascending id order: a voxel founds a group unless it shares a
//     symmetry with an already-seeded founder.
//   - FindMesoparent searches the groups for one the candidate voxel can
//     join. A group accepts a candidate when, over the operations
//     relating the candidate to the group's representative, some voxel
//     relation is Equal (join as-is) or Negation (join as the group's
//     complementary partner). A single no-relation operation rejects the
//     group outright; all-loose means no bond evidence exists yet.
//   - A candidate accepted only under negation either founds a new
//     complementary group partnered with its parent, or, when the
//     parent already has a partner, is redirected into that partner.
//
// Why:
//
//   - Two voxels in one group are guaranteed interchangeable origami;
//     the final unique-origami count is bounded by the group count, so
//     the painter grows groups as aggressively as the relations allow.
//
// Preference order is fixed: an Equal parent always beats a Negation
// parent, and among Negation parents the lowest group id wins. This
// keeps the partition deterministic for a given paint order.
//
// Errors:
//
//   - ErrUndecided: symmetric groups exist but none can host the
//     candidate in its current coloring. Callers treat this as "try
//     again once more bonds are colored", not as a failure.
//   - ErrUnmappable: no group shares any symmetry with the candidate.
//     Seeding guarantees one exists, so this signals corrupted state.
package meso
