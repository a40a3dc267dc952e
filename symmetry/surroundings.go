package symmetry

import (
	"encoding/binary"
	"errors"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/voxlath/grid"
	"github.com/katalvlaran/voxlath/lattice"
)

// ErrNilLattice indicates Compute or NewSurroundings received nil.
var ErrNilLattice = errors.New("symmetry: nil lattice")

// Surroundings holds the tiled minimal cell and the geometry needed to
// cut a centered material window around any voxel.
type Surroundings struct {
	full *grid.Grid
	// base is the (z, y, x) array offset of the center copy of the
	// minimal cell inside the tiling.
	base [3]int
	// radius is half the window side, rounded down.
	radius int
}

// NewSurroundings tiles the lattice's minimal cell so that every voxel
// of the center copy has a complete window of radius ⌊maxDim/2⌋ around
// it. Repeat counts per axis are ⌈3·maxDim/extent⌉, bumped to odd so
// one copy sits exactly centered.
func NewSurroundings(l *lattice.Lattice) (*Surroundings, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	min := l.MinimalCell()
	nz, ny, nx := min.Dims()
	ext := [3]int{nz, ny, nx}
	maxLen := min.MaxDim()

	var repeats, base [3]int
	for a := 0; a < 3; a++ {
		r := (3*maxLen + ext[a] - 1) / ext[a]
		if r%2 == 0 {
			r++
		}
		repeats[a] = r
		base[a] = (r / 2) * ext[a]
	}

	return &Surroundings{
		full:   min.Tile(repeats[0], repeats[1], repeats[2]),
		base:   base,
		radius: maxLen / 2,
	}, nil
}

// WindowSide returns the odd side length of every window.
func (s *Surroundings) WindowSide() int { return 2*s.radius + 1 }

// Window cuts the material cube centered on the voxel's position in the
// middle copy of the tiling. The result is freshly allocated.
func (s *Surroundings) Window(v lattice.Voxel) [][][]int {
	idx := v.GridIndex()
	cz := s.base[0] + idx[0]
	cy := s.base[1] + idx[1]
	cx := s.base[2] + idx[2]

	side := s.WindowSide()
	out := make([][][]int, side)
	for z := 0; z < side; z++ {
		out[z] = make([][]int, side)
		for y := 0; y < side; y++ {
			out[z][y] = make([]int, side)
			for x := 0; x < side; x++ {
				out[z][y][x] = s.full.At(cz-s.radius+z, cy-s.radius+y, cx-s.radius+x)
			}
		}
	}

	return out
}

// windowDigest hashes a window's cells; equal windows share a digest.
// Used as a prefilter before cell-by-cell comparison.
func windowDigest(w [][][]int) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, layer := range w {
		for _, row := range layer {
			for _, v := range row {
				binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
				_, _ = h.Write(buf[:])
			}
		}
	}

	return h.Sum64()
}

// windowsEqual reports cell-by-cell equality of two same-sided windows.
func windowsEqual(a, b [][][]int) bool {
	for z := range a {
		for y := range a[z] {
			for x := range a[z][y] {
				if a[z][y][x] != b[z][y][x] {
					return false
				}
			}
		}
	}

	return true
}
