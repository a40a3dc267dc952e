// Package voxlath computes minimal-redundancy bond colorings for periodic
// 3D lattices of octahedral DNA-origami voxels, so a lattice self-assembles
// correctly from the fewest distinct physical unit types.
//
// 🚀 What is voxlath?
//
//	A deterministic, single-threaded library that brings together:
//		• grid/      — validated 3D material fields: unit-cell detection,
//		               periodic tiling, compact binary codec
//		• lattice/   — the voxel/bond graph on a torus: wrap-around partner
//		               links, append-only bond colors and roles
//		• rotation/  — the symmetry-operation set: identity, nine single-axis
//		               rotations and their different-axis compositions
//		• symmetry/  — surroundings windows + the pairwise symmetry table
//		• relation/  — equal / loose / negation / no-relation classification
//		• meso/      — structural & complementary equivalence-class partition
//		• painter/   — the two-phase constraint-propagating bond painter
//		• colortree/ — complementarity-flip search minimizing unique origami
//		• export/    — flattened table views and GLB scenes for visualizers
//
// ✨ Why choose voxlath?
//
//   - Deterministic – canonical voxel and direction order, reproducible colors
//   - Strict invariants – partner complementarity and non-palindrome checks
//   - Pure algorithms – no network, no persisted state, no hidden goroutines
//
// Typical flow:
//
//	g, _   := grid.New(design)          // 3D ints from the external editor
//	lat, _ := lattice.Build(g)          // voxels + wrap-around bond partners
//	tbl, _ := symmetry.Compute(lat)     // point-group symmetry table
//	res, _ := painter.Paint(lat, tbl)   // structural + complementary phases
//	plan, _ := colortree.Optimize(lat, tbl) // shrink distinct unit types
//
// The colored lattice is then handed to the external visualizer via export.
//
//	go get github.com/katalvlaran/voxlath
package voxlath
