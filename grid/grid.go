package grid

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// New constructs a Grid from a non-empty, rectangular 3D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if any axis has zero extent,
// ErrNonRectangular if any layer or row length differs.
// Complexity: O(N) time and memory for N cells.
func New(values [][][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nz, ny, nx := len(values), len(values[0]), len(values[0][0])
	for _, layer := range values {
		if len(layer) != ny {
			return nil, ErrNonRectangular
		}
		for _, row := range layer {
			if len(row) != nx {
				return nil, ErrNonRectangular
			}
		}
	}
	// Deep copy to prevent external mutation.
	vals := make([][][]int, nz)
	for z := 0; z < nz; z++ {
		vals[z] = make([][]int, ny)
		for y := 0; y < ny; y++ {
			vals[z][y] = make([]int, nx)
			copy(vals[z][y], values[z][y])
		}
	}

	return &Grid{vals: vals, nz: nz, ny: ny, nx: nx}, nil
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	out, _ := New(g.vals)

	return out
}

// Equal reports whether g and other have identical shape and values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.nz != other.nz || g.ny != other.ny || g.nx != other.nx {
		return false
	}
	for z := 0; z < g.nz; z++ {
		for y := 0; y < g.ny; y++ {
			for x := 0; x < g.nx; x++ {
				if g.vals[z][y][x] != other.vals[z][y][x] {
					return false
				}
			}
		}
	}

	return true
}

// IsUnitCell reports whether g already contains its periodic repeat:
// the first and last layer along every axis are pairwise identical and
// every axis has extent ≥ 2 (a 1-wide axis cannot contain a repeat).
func (g *Grid) IsUnitCell() bool {
	if g.nz < 2 || g.ny < 2 || g.nx < 2 {
		return false
	}
	// z axis: layers [0] vs [nz-1].
	for y := 0; y < g.ny; y++ {
		for x := 0; x < g.nx; x++ {
			if g.vals[0][y][x] != g.vals[g.nz-1][y][x] {
				return false
			}
		}
	}
	// y axis: rows [0] vs [ny-1] across all layers.
	for z := 0; z < g.nz; z++ {
		for x := 0; x < g.nx; x++ {
			if g.vals[z][0][x] != g.vals[z][g.ny-1][x] {
				return false
			}
		}
	}
	// x axis: columns [0] vs [nx-1].
	for z := 0; z < g.nz; z++ {
		for y := 0; y < g.ny; y++ {
			if g.vals[z][y][0] != g.vals[z][y][g.nx-1] {
				return false
			}
		}
	}

	return true
}

// MinimalCell returns the minimal repeating cell: if g is a unit cell the
// duplicated boundary layer is trimmed from each axis, otherwise a copy of
// g itself is returned.
func (g *Grid) MinimalCell() *Grid {
	if !g.IsUnitCell() {
		return g.Clone()
	}
	vals := make([][][]int, g.nz-1)
	for z := 0; z < g.nz-1; z++ {
		vals[z] = make([][]int, g.ny-1)
		for y := 0; y < g.ny-1; y++ {
			vals[z][y] = make([]int, g.nx-1)
			copy(vals[z][y], g.vals[z][y][:g.nx-1])
		}
	}

	return &Grid{vals: vals, nz: g.nz - 1, ny: g.ny - 1, nx: g.nx - 1}
}

// UnitCell materializes the periodic repeat: if g is already a unit cell a
// copy is returned, otherwise g is wrap-padded by one layer per axis
// (layer 0 re-appears after the last layer, and likewise per row/column).
func (g *Grid) UnitCell() *Grid {
	if g.IsUnitCell() {
		return g.Clone()
	}
	nz, ny, nx := g.nz+1, g.ny+1, g.nx+1
	vals := make([][][]int, nz)
	for z := 0; z < nz; z++ {
		vals[z] = make([][]int, ny)
		for y := 0; y < ny; y++ {
			vals[z][y] = make([]int, nx)
			for x := 0; x < nx; x++ {
				vals[z][y][x] = g.vals[z%g.nz][y%g.ny][x%g.nx]
			}
		}
	}

	return &Grid{vals: vals, nz: nz, ny: ny, nx: nx}
}

// Tile repeats g rz×ry×rx times along (z, y, x). Repeat counts must be ≥ 1;
// the symmetry layer always passes odd counts so one copy sits centered.
// Complexity: O(N·rz·ry·rx).
func (g *Grid) Tile(rz, ry, rx int) *Grid {
	nz, ny, nx := g.nz*rz, g.ny*ry, g.nx*rx
	vals := make([][][]int, nz)
	for z := 0; z < nz; z++ {
		vals[z] = make([][]int, ny)
		for y := 0; y < ny; y++ {
			vals[z][y] = make([]int, nx)
			for x := 0; x < nx; x++ {
				vals[z][y][x] = g.vals[z%g.nz][y%g.ny][x%g.nx]
			}
		}
	}

	return &Grid{vals: vals, nz: nz, ny: ny, nx: nx}
}

// Digest returns a 64-bit content hash over shape and values.
// Equal grids always share a digest; it is used as a cheap prefilter
// before full Equal checks and as the codec integrity checksum.
func (g *Grid) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	writeU64(uint64(g.nz))
	writeU64(uint64(g.ny))
	writeU64(uint64(g.nx))
	for z := 0; z < g.nz; z++ {
		for y := 0; y < g.ny; y++ {
			for x := 0; x < g.nx; x++ {
				writeU64(uint64(int64(g.vals[z][y][x])))
			}
		}
	}

	return h.Sum64()
}
