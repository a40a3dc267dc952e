package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/voxlath/lattice"
)

// ErrBadTable indicates a table whose shape or cells cannot be applied
// to the given lattice.
var ErrBadTable = errors.New("export: malformed table")

// headerLen counts the fixed leading columns: id, material, x, y, z.
const headerLen = 5

// Table flattens the lattice into a header row plus one row per voxel.
// Bond columns hold the signed color value, or the role label under
// WithRoles. Blank bonds render as empty cells either way.
func Table(l *lattice.Lattice, opts ...Option) ([][]string, error) {
	if l == nil {
		return nil, lattice.ErrNilGrid
	}
	o := gatherOptions(opts...)

	header := []string{"id", "material", "x", "y", "z"}
	for _, d := range lattice.Directions() {
		header = append(header, d.String())
	}
	out := make([][]string, 0, l.NumVoxels()+1)
	out = append(out, header)

	for id := 0; id < l.NumVoxels(); id++ {
		v, err := l.Voxel(id)
		if err != nil {
			return nil, err
		}
		bonds, err := l.Bonds(id)
		if err != nil {
			return nil, err
		}
		row := []string{
			strconv.Itoa(v.ID),
			strconv.Itoa(v.Material),
			strconv.Itoa(v.Coord[0]),
			strconv.Itoa(v.Coord[1]),
			strconv.Itoa(v.Coord[2]),
		}
		for _, d := range lattice.Directions() {
			row = append(row, cell(bonds[d], o.roles))
		}
		out = append(out, row)
	}

	return out, nil
}

func cell(b lattice.Bond, roles bool) string {
	if !b.Colored {
		return ""
	}
	if roles {
		return b.Role.String()
	}

	return strconv.Itoa(b.Color)
}

// ReadTable applies a color table produced by Table back onto a freshly
// built lattice of the same shape. Roles are not part of the color view
// and come back as the zero role. Role tables are rejected: their cells
// do not parse as integers.
func ReadTable(l *lattice.Lattice, rows [][]string) error {
	if l == nil {
		return lattice.ErrNilGrid
	}
	if len(rows) != l.NumVoxels()+1 {
		return fmt.Errorf("%w: got %d rows, want %d", ErrBadTable, len(rows), l.NumVoxels()+1)
	}
	for i, row := range rows[1:] {
		if len(row) != headerLen+lattice.NumDirections {
			return fmt.Errorf("%w: row %d has %d columns", ErrBadTable, i+1, len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil || id != i {
			return fmt.Errorf("%w: row %d carries id %q", ErrBadTable, i+1, row[0])
		}
		for j, d := range lattice.Directions() {
			c := row[headerLen+j]
			if c == "" {
				continue
			}
			color, err := strconv.Atoi(c)
			if err != nil {
				return fmt.Errorf("%w: voxel %d %s cell %q is not a color", ErrBadTable, id, d, c)
			}
			if err := l.SetBond(id, d, color, lattice.RoleNone); err != nil {
				return err
			}
		}
	}

	return nil
}
