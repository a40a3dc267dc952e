package grid_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/grid"
)

// uniform builds an nz×ny×nx grid filled with v.
func uniform(t *testing.T, nz, ny, nx, v int) *grid.Grid {
	t.Helper()
	vals := make([][][]int, nz)
	for z := range vals {
		vals[z] = make([][]int, ny)
		for y := range vals[z] {
			vals[z][y] = make([]int, nx)
			for x := range vals[z][y] {
				vals[z][y][x] = v
			}
		}
	}
	g, err := grid.New(vals)
	require.NoError(t, err)

	return g
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		vals [][][]int
		err  error
	}{
		{"NoLayers", [][][]int{}, grid.ErrEmptyGrid},
		{"NoRows", [][][]int{{}}, grid.ErrEmptyGrid},
		{"NoCols", [][][]int{{{}}}, grid.ErrEmptyGrid},
		{"RaggedRows", [][][]int{{{1, 2}, {3}}}, grid.ErrNonRectangular},
		{"RaggedLayers", [][][]int{{{1}, {2}}, {{3}}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.vals)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_DeepCopies(t *testing.T) {
	vals := [][][]int{{{1, 2}, {3, 4}}}
	g, err := grid.New(vals)
	require.NoError(t, err)

	vals[0][1][0] = 99
	require.Equal(t, 3, g.At(0, 1, 0))
}

func TestIsUnitCell(t *testing.T) {
	// A 2×2×2 uniform block contains its own repeat on every axis.
	require.True(t, uniform(t, 2, 2, 2, 7).IsUnitCell())

	// A 1-wide axis cannot contain a repeat.
	require.False(t, uniform(t, 1, 1, 1, 7).IsUnitCell())
	require.False(t, uniform(t, 2, 2, 1, 7).IsUnitCell())

	// Mismatched boundary layers on any axis disqualify.
	vals := [][][]int{
		{{1, 1}, {1, 1}},
		{{1, 1}, {1, 2}},
	}
	g, err := grid.New(vals)
	require.NoError(t, err)
	require.False(t, g.IsUnitCell())
}

// TestUnitCellRoundTrip_Single covers the 1×1×1 scenario: expanding a
// single-voxel minimal cell must yield a valid unit cell that reduces
// back to the same 1×1×1 array.
func TestUnitCellRoundTrip_Single(t *testing.T) {
	minimal := uniform(t, 1, 1, 1, 5)
	require.False(t, minimal.IsUnitCell())

	unit := minimal.UnitCell()
	nz, ny, nx := unit.Dims()
	require.Equal(t, [3]int{2, 2, 2}, [3]int{nz, ny, nx})
	require.True(t, unit.IsUnitCell())

	back := unit.MinimalCell()
	require.True(t, back.Equal(minimal))
}

func TestUnitCell_WrapPad(t *testing.T) {
	vals := [][][]int{{{1, 2}, {3, 4}}} // 1×2×2, not a unit cell
	g, err := grid.New(vals)
	require.NoError(t, err)

	unit := g.UnitCell()
	nz, ny, nx := unit.Dims()
	require.Equal(t, [3]int{2, 3, 3}, [3]int{nz, ny, nx})
	// Wrapped boundary repeats layer/row/column zero.
	require.Equal(t, g.At(0, 0, 0), unit.At(1, 0, 0))
	require.Equal(t, g.At(0, 0, 0), unit.At(0, 2, 0))
	require.Equal(t, g.At(0, 1, 0), unit.At(0, 1, 2))
	require.True(t, unit.IsUnitCell())
}

func TestTile(t *testing.T) {
	vals := [][][]int{{{1, 2}}} // 1×1×2
	g, err := grid.New(vals)
	require.NoError(t, err)

	tiled := g.Tile(3, 1, 3)
	nz, ny, nx := tiled.Dims()
	require.Equal(t, [3]int{3, 1, 6}, [3]int{nz, ny, nx})
	for z := 0; z < nz; z++ {
		for x := 0; x < nx; x++ {
			require.Equal(t, g.At(0, 0, x%2), tiled.At(z, 0, x))
		}
	}
}

func TestDigest(t *testing.T) {
	a := uniform(t, 2, 3, 4, 1)
	b := uniform(t, 2, 3, 4, 1)
	require.Equal(t, a.Digest(), b.Digest())

	c := uniform(t, 2, 3, 4, 2)
	require.NotEqual(t, a.Digest(), c.Digest())

	// Same values, different shape must not collide via flattening.
	d := uniform(t, 4, 3, 2, 1)
	require.NotEqual(t, a.Digest(), d.Digest())
}

func TestCodec_RoundTrip(t *testing.T) {
	vals := [][][]int{
		{{0, 1, 2}, {3, 4, 5}},
		{{6, 7, 8}, {9, 10, 11}},
	}
	g, err := grid.New(vals)
	require.NoError(t, err)

	out, err := grid.Decode(grid.Encode(g))
	require.NoError(t, err)
	require.True(t, out.Equal(g))
	require.Equal(t, g.Digest(), out.Digest())
}

func TestCodec_Errors(t *testing.T) {
	g := uniform(t, 2, 2, 2, 3)
	enc := grid.Encode(g)

	_, err := grid.Decode([]byte("not a grid"))
	require.ErrorIs(t, err, grid.ErrCodecFormat)

	truncated := enc[:len(enc)-2]
	_, err = grid.Decode(truncated)
	require.ErrorIs(t, err, grid.ErrCodecFormat)

	// Flip a recorded checksum bit; the payload no longer matches.
	corrupt := append([]byte(nil), enc...)
	corrupt[16] ^= 0xFF
	_, err = grid.Decode(corrupt)
	require.ErrorIs(t, err, grid.ErrCodecChecksum)
}

func TestCodec_ForgedDimensions(t *testing.T) {
	// A header claiming billions of cells over an 8-byte payload must be
	// rejected without attempting the allocation the header demands.
	enc := grid.Encode(uniform(t, 2, 2, 2, 3))
	forged := append([]byte(nil), enc...)
	for _, off := range []int{4, 8, 12} {
		binary.LittleEndian.PutUint32(forged[off:], 0xFFFFFFFF)
	}

	_, err := grid.Decode(forged)
	require.ErrorIs(t, err, grid.ErrCodecFormat)
}
