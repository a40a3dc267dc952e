// Package grid defines the Grid type and sentinel errors for the grid
// subpackage of github.com/katalvlaran/voxlath.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no layers, no rows, or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one layer, row, and column")
	// ErrNonRectangular indicates layers or rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layers and rows must have the same length")
	// ErrCodecFormat indicates bytes that are not a valid encoded grid.
	ErrCodecFormat = errors.New("grid: malformed encoded stream")
	// ErrCodecChecksum indicates an encoded payload failing its integrity check.
	ErrCodecChecksum = errors.New("grid: checksum mismatch")
)

// Grid is a rectangular 3D integer field indexed [z][y][x].
// It is immutable once built: every accessor returns copies or values.
type Grid struct {
	vals       [][][]int
	nz, ny, nx int
}

// Dims returns the extents (nz, ny, nx) of the grid.
func (g *Grid) Dims() (nz, ny, nx int) {
	return g.nz, g.ny, g.nx
}

// At returns the material value at array index (z, y, x).
// Indices must be in range; callers hold the bounds contract.
func (g *Grid) At(z, y, x int) int {
	return g.vals[z][y][x]
}

// MaxDim returns the largest of the three extents.
func (g *Grid) MaxDim() int {
	m := g.nz
	if g.ny > m {
		m = g.ny
	}
	if g.nx > m {
		m = g.nx
	}

	return m
}
