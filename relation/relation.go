package relation

import (
	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/rotation"
)

// Kind is the relation between two bonds or two voxels.
type Kind uint8

// Relation kinds, weakest to strongest.
const (
	None Kind = iota
	Loose
	Equal
	Negation
)

var kindNames = [...]string{"no relation", "loose", "equal", "negation"}

// String returns the relation label.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}

	return kindNames[k]
}

// Colors classifies two bond records by color alone. A blank on either
// side carries no information and is Loose.
func Colors(a, b lattice.Bond) Kind {
	switch {
	case !a.Colored || !b.Colored:
		return Loose
	case a.Color == b.Color:
		return Equal
	case a.Color == -b.Color:
		return Negation
	default:
		return None
	}
}

// Voxels classifies voxel a against voxel b after rotating a's bonds by
// op. A single None slot is decisive; otherwise any Negation slot makes
// the pair Negation, otherwise any Equal slot makes it Equal, and only
// an all-Loose comparison stays Loose. One confirmed slot is enough to
// commit: the remaining blanks are filled by copying, not re-decided.
func Voxels(l *lattice.Lattice, a, b int, op rotation.Op) (Kind, error) {
	va, err := l.Voxel(a)
	if err != nil {
		return None, err
	}
	vb, err := l.Voxel(b)
	if err != nil {
		return None, err
	}
	if va.Material != vb.Material {
		return None, nil
	}

	rotated, err := l.RotatedBonds(a, op)
	if err != nil {
		return None, err
	}
	bonds, err := l.Bonds(b)
	if err != nil {
		return None, err
	}

	foundEqual, foundNegation := false, false
	for _, d := range lattice.Directions() {
		switch Colors(rotated[d], bonds[d]) {
		case None:
			return None, nil
		case Equal:
			foundEqual = true
		case Negation:
			foundNegation = true
		}
	}
	switch {
	case foundNegation:
		return Negation, nil
	case foundEqual:
		return Equal, nil
	default:
		return Loose, nil
	}
}
