package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/rotation"
)

func TestRegistry_Shape(t *testing.T) {
	ops := rotation.Ops()
	require.Len(t, ops, 37) // identity + 9 singles + 27 different-axis doubles
	require.Equal(t, rotation.NumOps(), len(ops))
	require.Equal(t, "translation", ops[0].String())
	require.Equal(t, rotation.Translation, ops[0])

	// Labels are unique and round-trip through ByLabel.
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		label := op.String()
		require.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true

		back, err := rotation.ByLabel(label)
		require.NoError(t, err)
		require.Equal(t, op, back)
	}

	_, err := rotation.ByLabel("45° X-axis")
	require.ErrorIs(t, err, rotation.ErrUnknownOp)
}

func TestApply_Singles(t *testing.T) {
	x90, err := rotation.ByLabel("90° X-axis")
	require.NoError(t, err)
	y90, err := rotation.ByLabel("90° Y-axis")
	require.NoError(t, err)
	z90, err := rotation.ByLabel("90° Z-axis")
	require.NoError(t, err)

	// Right-handed 90° rotations of the +y unit vector.
	require.Equal(t, [3]int{0, 0, 1}, rotation.Apply(x90, [3]int{0, 1, 0}))
	require.Equal(t, [3]int{0, 1, 0}, rotation.Apply(y90, [3]int{0, 1, 0}))
	require.Equal(t, [3]int{-1, 0, 0}, rotation.Apply(z90, [3]int{0, 1, 0}))

	// The rotation axis itself is fixed.
	require.Equal(t, [3]int{1, 0, 0}, rotation.Apply(x90, [3]int{1, 0, 0}))
}

func TestApply_FourfoldCycle(t *testing.T) {
	// Applying any 90° rotation four times is the identity on every
	// cardinal direction.
	dirs := [][3]int{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}
	for _, label := range []string{"90° X-axis", "90° Y-axis", "90° Z-axis"} {
		op, err := rotation.ByLabel(label)
		require.NoError(t, err)
		for _, d := range dirs {
			v := d
			for i := 0; i < 4; i++ {
				v = rotation.Apply(op, v)
			}
			require.Equal(t, d, v, "op %s direction %v", label, d)
		}
	}
}

func TestApply_DoubleMatchesComposition(t *testing.T) {
	x90, err := rotation.ByLabel("90° X-axis")
	require.NoError(t, err)
	y180, err := rotation.ByLabel("180° Y-axis")
	require.NoError(t, err)
	double, err := rotation.ByLabel("90° X-axis + 180° Y-axis")
	require.NoError(t, err)

	dirs := [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, -1, 0}}
	for _, d := range dirs {
		want := rotation.Apply(y180, rotation.Apply(x90, d))
		require.Equal(t, want, rotation.Apply(double, d))
	}
}

func TestTransformCube_MatchesApply(t *testing.T) {
	// A cube with a single marked cell: TransformCube must move the cell
	// at offset v to offset Apply(op, v).
	const s = 3
	blank := func() [][][]int {
		c := make([][][]int, s)
		for z := range c {
			c[z] = make([][]int, s)
			for y := range c[z] {
				c[z][y] = make([]int, s)
			}
		}

		return c
	}

	// Mark offset (1,0,0): array cell [r-vz][r-vy][r+vx] = [1][1][2].
	in := blank()
	in[1][1][2] = 9

	for _, op := range rotation.Ops() {
		out := rotation.TransformCube(in, op)
		w := rotation.Apply(op, [3]int{1, 0, 0})
		for z := 0; z < s; z++ {
			for y := 0; y < s; y++ {
				for x := 0; x < s; x++ {
					want := 0
					if z == 1-w[2] && y == 1-w[1] && x == 1+w[0] {
						want = 9
					}
					require.Equal(t, want, out[z][y][x],
						"op %s cell (%d,%d,%d)", op, z, y, x)
				}
			}
		}
	}
}

func TestTransformCube_IdentityAndCycle(t *testing.T) {
	in := [][][]int{
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{10, 11, 12}, {13, 14, 15}, {16, 17, 18}},
		{{19, 20, 21}, {22, 23, 24}, {25, 26, 27}},
	}
	require.Equal(t, in, rotation.TransformCube(in, rotation.Translation))

	z90, err := rotation.ByLabel("90° Z-axis")
	require.NoError(t, err)
	out := in
	for i := 0; i < 4; i++ {
		out = rotation.TransformCube(out, z90)
	}
	require.Equal(t, in, out)
}
