package colortree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/colortree"
	"github.com/katalvlaran/voxlath/grid"
	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/painter"
	"github.com/katalvlaran/voxlath/symmetry"
)

// buildPainted constructs and fully paints a lattice from raw materials.
func buildPainted(t *testing.T, vals [][][]int) (*lattice.Lattice, *symmetry.Table, *painter.Result) {
	t.Helper()
	g, err := grid.New(vals)
	require.NoError(t, err)
	l, err := lattice.Build(g)
	require.NoError(t, err)
	tbl, err := symmetry.Compute(l)
	require.NoError(t, err)
	res, err := painter.Paint(l, tbl)
	require.NoError(t, err)

	return l, tbl, res
}

func uniformCube() [][][]int {
	vals := make([][][]int, 3)
	for z := range vals {
		vals[z] = make([][]int, 3)
		for y := range vals[z] {
			vals[z][y] = []int{7, 7, 7}
		}
	}

	return vals
}

func TestOptimize_Preconditions(t *testing.T) {
	l, tbl, _ := buildPainted(t, [][][]int{{{1, 2}}})

	_, err := colortree.Optimize(nil, tbl)
	require.ErrorIs(t, err, painter.ErrNoSymmetry)
	_, err = colortree.Optimize(l, nil)
	require.ErrorIs(t, err, painter.ErrNoSymmetry)

	// A table over a different lattice is rejected.
	_, otherTbl, _ := buildPainted(t, [][][]int{{{1, 2, 3}}})
	_, err = colortree.Optimize(l, otherTbl)
	require.ErrorIs(t, err, painter.ErrNoSymmetry)

	// An unpainted lattice has no color dictionary to search.
	g, err := grid.New([][][]int{{{1, 2}}})
	require.NoError(t, err)
	blank, err := lattice.Build(g)
	require.NoError(t, err)
	_, err = colortree.Optimize(blank, tbl)
	require.ErrorIs(t, err, lattice.ErrUncolored)
}

func TestWithMaxCombos_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { colortree.WithMaxCombos(0) })
	require.Panics(t, func() { colortree.WithMaxCombos(-4) })
}

func TestOptimize_NeverRegresses(t *testing.T) {
	tests := []struct {
		name string
		vals [][][]int
	}{
		{name: "uniform cube", vals: uniformCube()},
		{name: "two materials", vals: [][][]int{{{1, 2}}}},
		{
			name: "checkerboard",
			vals: [][][]int{
				{
					{1, 2},
					{2, 1},
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, tbl, _ := buildPainted(t, tc.vals)
			before, err := painter.UniqueOrigami(l, tbl)
			require.NoError(t, err)

			plan, err := colortree.Optimize(l, tbl)
			require.NoError(t, err)
			require.Equal(t, len(before), plan.Baseline)
			require.LessOrEqual(t, plan.Best, plan.Baseline)
			require.GreaterOrEqual(t, plan.Best, 1)

			// The lattice is left in the best configuration found, and the
			// bond invariants survive the sign reassignments.
			after, err := painter.UniqueOrigami(l, tbl)
			require.NoError(t, err)
			require.Equal(t, plan.Best, len(after))
			require.NoError(t, painter.CheckInvariants(l))
		})
	}
}

func TestPlan_ApplyReproducesBest(t *testing.T) {
	vals := uniformCube()
	l1, t1, _ := buildPainted(t, vals)
	plan, err := colortree.Optimize(l1, t1)
	require.NoError(t, err)

	// Applying the plan to a second, identically painted lattice lands
	// on the same count.
	l2, t2, _ := buildPainted(t, vals)
	require.NoError(t, plan.Apply(l2))
	unique, err := painter.UniqueOrigami(l2, t2)
	require.NoError(t, err)
	require.Equal(t, plan.Best, len(unique))

	for v := 0; v < l1.NumVoxels(); v++ {
		b1, err := l1.Bonds(v)
		require.NoError(t, err)
		b2, err := l2.Bonds(v)
		require.NoError(t, err)
		for _, d := range lattice.Directions() {
			require.Equal(t, b1[d].Color, b2[d].Color, "voxel %d direction %s", v, d)
		}
	}
}

func TestOptimize_ConfigsCoverEveryColor(t *testing.T) {
	l, tbl, _ := buildPainted(t, [][][]int{{{1, 2}}})
	plan, err := colortree.Optimize(l, tbl)
	require.NoError(t, err)

	colors, err := l.Colors()
	require.NoError(t, err)
	require.Len(t, plan.Configs, len(colors))
	dict, err := l.ColorDict()
	require.NoError(t, err)
	for _, c := range colors {
		require.Len(t, plan.Configs[c], len(dict[c]), "color %d", c)
		for v, sign := range plan.Configs[c] {
			require.Contains(t, []int{1, -1}, sign, "color %d voxel %d", c, v)
		}
	}
}

func TestOptimize_Trace(t *testing.T) {
	l, tbl, _ := buildPainted(t, uniformCube())

	var trace bytes.Buffer
	_, err := colortree.Optimize(l, tbl, colortree.WithTrace(&trace), colortree.WithMaxCombos(8))
	require.NoError(t, err)
	require.Contains(t, trace.String(), "baseline")
}

func TestOptimize_Deterministic(t *testing.T) {
	vals := [][][]int{
		{
			{1, 1},
			{1, 2},
		},
	}
	l1, t1, _ := buildPainted(t, vals)
	l2, t2, _ := buildPainted(t, vals)

	p1, err := colortree.Optimize(l1, t1)
	require.NoError(t, err)
	p2, err := colortree.Optimize(l2, t2)
	require.NoError(t, err)
	require.Equal(t, p1.Best, p2.Best)

	for v := 0; v < l1.NumVoxels(); v++ {
		b1, err := l1.Bonds(v)
		require.NoError(t, err)
		b2, err := l2.Bonds(v)
		require.NoError(t, err)
		require.Equal(t, b1, b2, "voxel %d", v)
	}
}
