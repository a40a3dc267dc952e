package lattice

import (
	"github.com/katalvlaran/voxlath/grid"
)

// Lattice is the bond graph of one minimal repeating cell on a torus.
// Voxels, bonds, and partner links are stored in flat arenas indexed by
// voxel id; the structure never grows or shrinks after Build.
type Lattice struct {
	min  *grid.Grid
	unit *grid.Grid

	voxels   []Voxel
	bonds    [][NumDirections]Bond
	partners [][NumDirections]BondRef
	byCoord  map[[3]int]int
}

// Build constructs the lattice for a validated grid. The grid may be
// either a minimal design or a full unit cell; Build normalizes to the
// minimal cell and materializes the unit cell alongside it.
//
// Voxels are created in row-major (z, y, x) order over the minimal cell
// with sequential ids from 0. Partner links are resolved once, through
// toroidal wrap-around, before Build returns.
// Complexity: O(N) for N minimal-cell voxels.
func Build(g *grid.Grid) (*Lattice, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	l := &Lattice{
		min:  g.MinimalCell(),
		unit: g.UnitCell(),
	}
	nz, ny, nx := l.min.Dims()
	n := nz * ny * nx
	l.voxels = make([]Voxel, 0, n)
	l.bonds = make([][NumDirections]Bond, n)
	l.partners = make([][NumDirections]BondRef, n)
	l.byCoord = make(map[[3]int]int, n)

	id := 0
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				// Array index (z, y, x) maps to euclidean (x, ny-1-y, nz-1-z):
				// the bottom-left corner of the bottom layer is the origin.
				coord := [3]int{x, ny - 1 - y, nz - 1 - z}
				l.voxels = append(l.voxels, Voxel{
					ID:       id,
					Material: l.min.At(z, y, x),
					Coord:    coord,
					idx:      [3]int{z, y, x},
				})
				l.byCoord[coord] = id
				id++
			}
		}
	}

	if err := l.fillPartners(); err != nil {
		return nil, err
	}

	return l, nil
}

// fillPartners resolves the unique bond partner of every slot. Each pair
// is linked from both sides in one step, so a half-linked state is never
// observable.
func (l *Lattice) fillPartners() error {
	extents := [3]int{0, 0, 0}
	nz, ny, nx := l.min.Dims()
	extents[0], extents[1], extents[2] = nx, ny, nz

	linked := make([][NumDirections]bool, len(l.voxels))
	for id := range l.voxels {
		for _, d := range Directions() {
			if linked[id][d] {
				continue
			}
			// Neighbor coordinate with per-axis wrap-around.
			v := d.Vector()
			nc := l.voxels[id].Coord
			for a := 0; a < 3; a++ {
				nc[a] = ((nc[a]+v[a])%extents[a] + extents[a]) % extents[a]
			}
			pid, ok := l.byCoord[nc]
			if !ok {
				return ErrUnresolvedNeighbor
			}
			opp := d.Opposite()
			l.partners[id][d] = BondRef{Voxel: pid, Dir: opp}
			l.partners[pid][opp] = BondRef{Voxel: id, Dir: d}
			linked[id][d] = true
			linked[pid][opp] = true
		}
	}

	return nil
}

// MinimalCell returns a copy of the minimal repeating cell grid.
func (l *Lattice) MinimalCell() *grid.Grid { return l.min.Clone() }

// UnitCell returns a copy of the materialized unit cell grid.
func (l *Lattice) UnitCell() *grid.Grid { return l.unit.Clone() }

// NumVoxels returns the voxel count of the minimal cell.
func (l *Lattice) NumVoxels() int { return len(l.voxels) }

// Voxel returns the voxel record with the given id.
func (l *Lattice) Voxel(id int) (Voxel, error) {
	if id < 0 || id >= len(l.voxels) {
		return Voxel{}, ErrVoxelNotFound
	}

	return l.voxels[id], nil
}

// VoxelAt returns the voxel at a euclidean coordinate inside the
// minimal cell.
func (l *Lattice) VoxelAt(coord [3]int) (Voxel, error) {
	id, ok := l.byCoord[coord]
	if !ok {
		return Voxel{}, ErrVoxelNotFound
	}

	return l.voxels[id], nil
}

// Bond returns the bond record at (id, d).
func (l *Lattice) Bond(id int, d Direction) (Bond, error) {
	if id < 0 || id >= len(l.bonds) || d >= NumDirections {
		return Bond{}, ErrVoxelNotFound
	}

	return l.bonds[id][d], nil
}

// Bonds returns all six bond records of a voxel in canonical direction
// order.
func (l *Lattice) Bonds(id int) ([NumDirections]Bond, error) {
	if id < 0 || id >= len(l.bonds) {
		return [NumDirections]Bond{}, ErrVoxelNotFound
	}

	return l.bonds[id], nil
}

// Partner returns the bond slot ref paired with ref. Partner links are
// fixed at Build and symmetric: Partner(Partner(r)) == r.
func (l *Lattice) Partner(ref BondRef) (BondRef, error) {
	if ref.Voxel < 0 || ref.Voxel >= len(l.partners) || ref.Dir >= NumDirections {
		return BondRef{}, ErrVoxelNotFound
	}

	return l.partners[ref.Voxel][ref.Dir], nil
}

// SetBond colors the bond at (id, d). Coloring is append-only: a second
// SetBond on the same slot returns ErrRecolor, whatever the new color.
func (l *Lattice) SetBond(id int, d Direction, color int, role Role) error {
	if id < 0 || id >= len(l.bonds) || d >= NumDirections {
		return ErrVoxelNotFound
	}
	if l.bonds[id][d].Colored {
		return ErrRecolor
	}
	l.bonds[id][d] = Bond{Color: color, Colored: true, Role: role}

	return nil
}

// SetRole retags an already-colored bond without touching its color.
func (l *Lattice) SetRole(id int, d Direction, role Role) error {
	if id < 0 || id >= len(l.bonds) || d >= NumDirections {
		return ErrVoxelNotFound
	}
	l.bonds[id][d].Role = role

	return nil
}

// AllColored reports whether every bond slot in the lattice is colored.
func (l *Lattice) AllColored() bool {
	for id := range l.bonds {
		for _, d := range Directions() {
			if !l.bonds[id][d].Colored {
				return false
			}
		}
	}

	return true
}
