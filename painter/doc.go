// Package painter assigns a color and a role to every bond of a lattice
// while reusing colors across symmetric voxels.
//
// What:
//
//   - Phase 1 (structural seeding) walks the structural groups of the
//     mesovoxel and paints a fresh color pair onto every still-blank
//     bond between two structural representatives, propagating each new
//     color through the voxels' self-symmetries.
//   - Phase 2 (complementary completion) paints a fresh color pair onto
//     every remaining blank bond, then alternates two worklists until
//     both drain: newly painted voxels propagate their self-symmetries,
//     and candidate voxels are adopted into the mesovoxel by mapping a
//     parent's bond pattern onto them (negated when the candidate
//     carries the complementary pattern).
//
// Invariants held throughout:
//
//   - a bond and its partner carry opposite colors once both are set;
//   - colors are append-only, never overwritten;
//   - no voxel holds a color and its negation on two bonds, except the
//     unavoidable case of a bond partnered with another bond of the
//     same voxel (a 1-wide periodic axis). A rotation candidate whose
//     application would break this is skipped and the next candidate
//     is tried.
//
// Roles: bonds painted in phase 1 are structural, fresh phase-2 pairs
// are complementary, and every bond copied from a non-structural source
// is mapped. Negation during map-painting applies to non-structural
// bonds only; the structural frame is never flipped.
//
// Worklists pop the smallest voxel id first, so a given lattice always
// paints identically.
//
// Errors:
//
//   - ErrNoSymmetry: the symmetry table is missing or belongs to a
//     different lattice.
//   - ErrInconsistent: a candidate voxel shares no symmetry with any
//     group; the table and the seeding disagree (internal failure, not
//     retryable). A candidate every group merely rejects or defers is
//     not an error: it is simply retried, or left as its own unit.
//   - ErrComplementarity, ErrPalindrome: reported by CheckInvariants on
//     a lattice that violates the painted-state contract.
package painter
