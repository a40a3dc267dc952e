package symmetry

import (
	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/rotation"
)

// Table stores, for every ordered voxel pair (a, b), the set of
// operations mapping a's surroundings onto b's. The registry holds
// fewer than 64 operations, so each pair packs into one word.
type Table struct {
	n    int
	bits []uint64 // indexed a*n + b; bit i set ⇔ Ops()[i] ∈ Symlist(a, b)
}

// Compute builds the full symmetry table for a lattice.
//
// For each operation the window of a is transformed once and compared
// against every b, digest first, cells only on digest match. Voxels of
// different materials can still be symmetric; symmetry is a property of
// surroundings, not of the center.
func Compute(l *lattice.Lattice) (*Table, error) {
	s, err := NewSurroundings(l)
	if err != nil {
		return nil, err
	}
	n := l.NumVoxels()
	t := &Table{n: n, bits: make([]uint64, n*n)}

	// Untransformed windows and digests, computed once per voxel.
	windows := make([][][][]int, n)
	digests := make([]uint64, n)
	for id := 0; id < n; id++ {
		v, err := l.Voxel(id)
		if err != nil {
			return nil, err
		}
		windows[id] = s.Window(v)
		digests[id] = windowDigest(windows[id])
	}

	for i, op := range rotation.Ops() {
		for a := 0; a < n; a++ {
			rotated := rotation.TransformCube(windows[a], op)
			digest := windowDigest(rotated)
			for b := 0; b < n; b++ {
				if digest != digests[b] {
					continue
				}
				if windowsEqual(rotated, windows[b]) {
					t.bits[a*n+b] |= 1 << uint(i)
				}
			}
		}
	}

	return t, nil
}

// NumVoxels returns the voxel count the table was computed over.
func (t *Table) NumVoxels() int { return t.n }

// Has reports whether op maps a's surroundings onto b's.
func (t *Table) Has(a, b int, op rotation.Op) bool {
	if a < 0 || a >= t.n || b < 0 || b >= t.n || !op.Valid() {
		return false
	}

	return t.bits[a*t.n+b]&(1<<uint(op)) != 0
}

// Symlist returns the operations mapping a onto b, in canonical
// registry order. An empty list means the pair shares no symmetry.
func (t *Table) Symlist(a, b int) []rotation.Op {
	if a < 0 || a >= t.n || b < 0 || b >= t.n {
		return nil
	}
	var out []rotation.Op
	word := t.bits[a*t.n+b]
	for _, op := range rotation.Ops() {
		if word&(1<<uint(op)) != 0 {
			out = append(out, op)
		}
	}

	return out
}

// Symvoxels returns, ascending, the ids of voxels b with at least one
// operation mapping a onto b. a itself always appears: translation maps
// every voxel onto itself.
func (t *Table) Symvoxels(a int) []int {
	if a < 0 || a >= t.n {
		return nil
	}
	var out []int
	for b := 0; b < t.n; b++ {
		if t.bits[a*t.n+b] != 0 {
			out = append(out, b)
		}
	}

	return out
}

// SelfSymlist returns a's nontrivial self-symmetries: every operation
// except translation that maps a's surroundings onto themselves.
func (t *Table) SelfSymlist(a int) []rotation.Op {
	var out []rotation.Op
	for _, op := range t.Symlist(a, a) {
		if op != rotation.Translation {
			out = append(out, op)
		}
	}

	return out
}

// Equal reports whether two tables hold identical contents.
func (t *Table) Equal(other *Table) bool {
	if other == nil || t.n != other.n {
		return false
	}
	for i := range t.bits {
		if t.bits[i] != other.bits[i] {
			return false
		}
	}

	return true
}
