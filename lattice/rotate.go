package lattice

import (
	"github.com/katalvlaran/voxlath/rotation"
)

// RotatedBonds returns the voxel's six bond records re-slotted as if the
// voxel were rotated by op: the bond at direction d lands at the
// direction op maps d's vector onto. Bond values are unchanged; only
// their slots move. The lattice itself is not mutated.
func (l *Lattice) RotatedBonds(id int, op rotation.Op) ([NumDirections]Bond, error) {
	var out [NumDirections]Bond
	bonds, err := l.Bonds(id)
	if err != nil {
		return out, err
	}
	for _, d := range Directions() {
		nd, err := DirectionFromVector(rotation.Apply(op, d.Vector()))
		if err != nil {
			return out, err
		}
		out[nd] = bonds[d]
	}

	return out, nil
}

// BondsEqual reports whether two six-slot bond sets carry identical
// colors in every direction. Uncolored slots compare equal only to
// uncolored slots.
func BondsEqual(a, b [NumDirections]Bond) bool {
	for _, d := range Directions() {
		if a[d].Colored != b[d].Colored {
			return false
		}
		if a[d].Colored && a[d].Color != b[d].Color {
			return false
		}
	}

	return true
}

// BondsNegated reports whether every colored slot of a carries exactly
// the negation of the corresponding slot of b: the two sets describe a
// unit and its complement.
func BondsNegated(a, b [NumDirections]Bond) bool {
	for _, d := range Directions() {
		if a[d].Colored != b[d].Colored {
			return false
		}
		if a[d].Colored && a[d].Color != -b[d].Color {
			return false
		}
	}

	return true
}
