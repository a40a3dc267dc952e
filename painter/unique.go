package painter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/symmetry"
)

// Invariant-check errors.
var (
	// ErrComplementarity indicates a colored bond whose partner does not
	// carry the exact complement.
	ErrComplementarity = errors.New("painter: bond and partner are not complementary")
	// ErrPalindrome indicates a voxel holding a color and its negation
	// outside a mutual partner pair.
	ErrPalindrome = errors.New("painter: voxel holds a color and its negation")
)

// UniqueOrigami returns, ascending, one representative voxel id per
// distinct unit type: a voxel is folded into an earlier representative
// when some shared symmetry operation rotates its bond colors exactly
// onto the representative's, or onto their exact negation (a unit and
// its full complement count once).
func UniqueOrigami(l *lattice.Lattice, tbl *symmetry.Table) ([]int, error) {
	if l == nil || tbl == nil || tbl.NumVoxels() != l.NumVoxels() {
		return nil, ErrNoSymmetry
	}

	var unique []int
	for v := 0; v < l.NumVoxels(); v++ {
		isUnique := true
		for _, rep := range unique {
			repBonds, err := l.Bonds(rep)
			if err != nil {
				return nil, err
			}
			for _, op := range tbl.Symlist(v, rep) {
				rotated, err := l.RotatedBonds(v, op)
				if err != nil {
					return nil, err
				}
				if lattice.BondsEqual(rotated, repBonds) || lattice.BondsNegated(rotated, repBonds) {
					isUnique = false
					break
				}
			}
			if !isUnique {
				break
			}
		}
		if isUnique {
			unique = append(unique, v)
		}
	}

	return unique, nil
}

// CheckInvariants verifies the painted-state contract over the whole
// lattice: every bond is colored, every partner pair is complementary,
// and no voxel is palindromic outside mutual partner pairs.
func CheckInvariants(l *lattice.Lattice) error {
	if l == nil {
		return lattice.ErrNilGrid
	}
	if !l.AllColored() {
		return lattice.ErrUncolored
	}

	for v := 0; v < l.NumVoxels(); v++ {
		bonds, err := l.Bonds(v)
		if err != nil {
			return err
		}
		for _, d := range lattice.Directions() {
			ref, err := l.Partner(lattice.BondRef{Voxel: v, Dir: d})
			if err != nil {
				return err
			}
			partner, err := l.Bond(ref.Voxel, ref.Dir)
			if err != nil {
				return err
			}
			if partner.Color != -bonds[d].Color {
				return fmt.Errorf("%w: voxel %d %s (%d) vs voxel %d %s (%d)",
					ErrComplementarity, v, d, bonds[d].Color, ref.Voxel, ref.Dir, partner.Color)
			}

			for _, d2 := range lattice.Directions() {
				if d2 <= d || bonds[d].Color != -bonds[d2].Color {
					continue
				}
				if ref.Voxel == v && ref.Dir == d2 {
					continue // complementary by construction
				}

				return fmt.Errorf("%w: voxel %d holds %d on %s and %d on %s",
					ErrPalindrome, v, bonds[d].Color, d, bonds[d2].Color, d2)
			}
		}
	}

	return nil
}
