package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/grid"
	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/rotation"
	"github.com/katalvlaran/voxlath/symmetry"
)

func buildLattice(t *testing.T, vals [][][]int) *lattice.Lattice {
	t.Helper()
	g, err := grid.New(vals)
	require.NoError(t, err)
	l, err := lattice.Build(g)
	require.NoError(t, err)

	return l
}

func TestCompute_NilLattice(t *testing.T) {
	_, err := symmetry.Compute(nil)
	require.ErrorIs(t, err, symmetry.ErrNilLattice)

	_, err = symmetry.NewSurroundings(nil)
	require.ErrorIs(t, err, symmetry.ErrNilLattice)
}

func TestCompute_UniformCell_FullSymmetry(t *testing.T) {
	// A 2×2×2 all-same grid is a unit cell; its minimal cell is a single
	// voxel whose surroundings are uniform, so every operation is a
	// self-symmetry.
	vals := [][][]int{
		{{7, 7}, {7, 7}},
		{{7, 7}, {7, 7}},
	}
	l := buildLattice(t, vals)
	require.Equal(t, 1, l.NumVoxels())

	tbl, err := symmetry.Compute(l)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.NumVoxels())
	require.Len(t, tbl.Symlist(0, 0), rotation.NumOps())
	require.Len(t, tbl.SelfSymlist(0), rotation.NumOps()-1)
}

func TestCompute_DifferentCenters_NoSymmetry(t *testing.T) {
	// Rotation fixes the window center, so voxels of different materials
	// never share a symmetry.
	l := buildLattice(t, [][][]int{{{1, 2}}})
	tbl, err := symmetry.Compute(l)
	require.NoError(t, err)

	require.Empty(t, tbl.Symlist(0, 1))
	require.Empty(t, tbl.Symlist(1, 0))

	// Each voxel is at least self-symmetric under translation.
	self := tbl.Symlist(0, 0)
	require.NotEmpty(t, self)
	require.Equal(t, rotation.Translation, self[0])
	require.True(t, tbl.Has(0, 0, rotation.Translation))
	require.False(t, tbl.Has(0, 1, rotation.Translation))
}

func TestCompute_Checkerboard_TranslationPairs(t *testing.T) {
	// In a periodic 2D checkerboard every same-material voxel has
	// identical surroundings, so translation relates the diagonal pairs.
	l := buildLattice(t, [][][]int{
		{
			{1, 2},
			{2, 1},
		},
	})
	tbl, err := symmetry.Compute(l)
	require.NoError(t, err)

	require.True(t, tbl.Has(0, 3, rotation.Translation))
	require.True(t, tbl.Has(3, 0, rotation.Translation))
	require.True(t, tbl.Has(1, 2, rotation.Translation))
	require.Empty(t, tbl.Symlist(0, 1))

	require.Equal(t, []int{0, 3}, tbl.Symvoxels(0))
	require.Equal(t, []int{1, 2}, tbl.Symvoxels(1))
}

func TestCompute_Soundness(t *testing.T) {
	// Every claimed symmetry must hold on the windows themselves.
	l := buildLattice(t, [][][]int{
		{
			{1, 2},
			{2, 1},
		},
		{
			{2, 1},
			{1, 2},
		},
	})
	tbl, err := symmetry.Compute(l)
	require.NoError(t, err)
	s, err := symmetry.NewSurroundings(l)
	require.NoError(t, err)

	for a := 0; a < l.NumVoxels(); a++ {
		va, err := l.Voxel(a)
		require.NoError(t, err)
		for b := 0; b < l.NumVoxels(); b++ {
			vb, err := l.Voxel(b)
			require.NoError(t, err)
			wb := s.Window(vb)
			for _, op := range tbl.Symlist(a, b) {
				require.Equal(t, wb, rotation.TransformCube(s.Window(va), op),
					"pair (%d,%d) op %s", a, b, op)
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	vals := [][][]int{
		{
			{1, 2},
			{3, 1},
		},
	}
	first, err := symmetry.Compute(buildLattice(t, vals))
	require.NoError(t, err)
	second, err := symmetry.Compute(buildLattice(t, vals))
	require.NoError(t, err)
	require.True(t, first.Equal(second))
	require.False(t, first.Equal(nil))
}

func TestSurroundings_WindowGeometry(t *testing.T) {
	l := buildLattice(t, [][][]int{{{1, 2}}})
	s, err := symmetry.NewSurroundings(l)
	require.NoError(t, err)
	require.Equal(t, 3, s.WindowSide())

	v0, err := l.Voxel(0)
	require.NoError(t, err)
	w := s.Window(v0)

	// The center cell carries the voxel's own material; the x axis
	// alternates periodically around it.
	require.Equal(t, 1, w[1][1][1])
	require.Equal(t, 2, w[1][1][0])
	require.Equal(t, 2, w[1][1][2])
	// The 1-wide y and z axes wrap onto the same material.
	require.Equal(t, 1, w[0][1][1])
	require.Equal(t, 1, w[2][1][1])
	require.Equal(t, 1, w[1][0][1])
}
