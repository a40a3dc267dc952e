// Package lattice defines Voxel, Bond, Direction, Role, and the sentinel
// errors of the lattice subpackage of github.com/katalvlaran/voxlath.
package lattice

import (
	"errors"
)

// Sentinel errors for lattice operations.
var (
	// ErrNilGrid indicates Build was called with a nil grid.
	ErrNilGrid = errors.New("lattice: nil grid")
	// ErrVoxelNotFound indicates a lookup by unknown id or coordinate.
	ErrVoxelNotFound = errors.New("lattice: voxel not found")
	// ErrUnresolvedNeighbor indicates a failed wrap-around partner lookup.
	ErrUnresolvedNeighbor = errors.New("lattice: unresolved bond neighbor")
	// ErrRecolor indicates an attempt to overwrite an already-colored bond.
	ErrRecolor = errors.New("lattice: bond already colored")
	// ErrBadDirection indicates a vector that is not a cardinal direction.
	ErrBadDirection = errors.New("lattice: not a cardinal direction")
)

// Direction indexes one of a voxel's six bond slots.
// The canonical iteration order is +x, -x, +y, -y, +z, -z.
type Direction uint8

// The six cardinal directions.
const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// NumDirections is the number of bond slots per voxel.
const NumDirections = 6

var dirVectors = [NumDirections][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

var dirNames = [NumDirections]string{"+x", "-x", "+y", "-y", "+z", "-z"}

// Directions returns the six directions in canonical order.
func Directions() []Direction {
	return []Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}
}

// Vector returns the unit euclidean vector of d.
func (d Direction) Vector() [3]int { return dirVectors[d] }

// Opposite returns the reversed direction (+x ↔ -x, …).
func (d Direction) Opposite() Direction { return d ^ 1 }

// String returns the short label of d, e.g. "+x".
func (d Direction) String() string {
	if d >= NumDirections {
		return "invalid"
	}

	return dirNames[d]
}

// DirectionFromVector resolves a unit vector back to its Direction.
// Returns ErrBadDirection for anything but the six cardinals.
func DirectionFromVector(v [3]int) (Direction, error) {
	for i, dv := range dirVectors {
		if dv == v {
			return Direction(i), nil
		}
	}

	return 0, ErrBadDirection
}

// Role tags how a bond received its color.
type Role uint8

// Bond roles. RoleNone marks an uncolored or untagged bond.
const (
	RoleNone Role = iota
	RoleStructural
	RoleComplementary
	RoleMapped
)

var roleNames = [...]string{"", "structural", "complementary", "mapped"}

// String returns the role label; the zero role renders empty.
func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return "invalid"
	}

	return roleNames[r]
}

// RoleFromString resolves a role label; the empty string is RoleNone.
func RoleFromString(s string) (Role, error) {
	for i, n := range roleNames {
		if n == s {
			return Role(i), nil
		}
	}

	return 0, errors.New("lattice: unknown role " + s)
}

// Bond is one directional binding site. A Bond is a value: reading it
// copies the record; mutation goes through Lattice methods.
type Bond struct {
	Color   int
	Colored bool
	Role    Role
}

// BondRef addresses a bond slot in the arena.
type BondRef struct {
	Voxel int
	Dir   Direction
}

// Voxel is one octahedral building block.
type Voxel struct {
	ID       int
	Material int
	// Coord is the euclidean position inside the minimal cell, with the
	// bottom-left corner of the bottom layer at the origin.
	Coord [3]int
	// idx is the (z, y, x) array index into the minimal cell.
	idx [3]int
}

// GridIndex returns the (z, y, x) array index of the voxel inside the
// minimal repeating cell.
func (v *Voxel) GridIndex() [3]int { return v.idx }
