package lattice

import (
	"errors"
	"sort"
)

// Complement-layer errors.
var (
	// ErrUncolored indicates a color query on a lattice with uncolored bonds.
	ErrUncolored = errors.New("lattice: lattice has uncolored bonds")
	// ErrColorAbsent indicates the voxel carries no bond of the given color.
	ErrColorAbsent = errors.New("lattice: color not present on voxel")
)

// ColorDict maps every absolute color in a fully colored lattice to the
// ascending list of voxel ids carrying that color on at least one bond.
// Returns ErrUncolored if any bond is still blank.
func (l *Lattice) ColorDict() (map[int][]int, error) {
	dict := make(map[int][]int)
	for id := range l.bonds {
		for _, d := range Directions() {
			b := l.bonds[id][d]
			if !b.Colored {
				return nil, ErrUncolored
			}
			c := abs(b.Color)
			ids := dict[c]
			if len(ids) == 0 || ids[len(ids)-1] != id {
				dict[c] = append(ids, id)
			}
		}
	}

	return dict, nil
}

// Colors returns the absolute colors of a fully colored lattice in
// ascending order.
func (l *Lattice) Colors() ([]int, error) {
	dict, err := l.ColorDict()
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(dict))
	for c := range dict {
		out = append(out, c)
	}
	sort.Ints(out)

	return out, nil
}

// Complementarity returns the sign (+1 or -1) the voxel carries for the
// given absolute color, read from the first matching bond in canonical
// direction order. Returns ErrColorAbsent if no bond matches.
func (l *Lattice) Complementarity(id, color int) (int, error) {
	if id < 0 || id >= len(l.bonds) {
		return 0, ErrVoxelNotFound
	}
	for _, d := range Directions() {
		b := l.bonds[id][d]
		if b.Colored && abs(b.Color) == color {
			if b.Color > 0 {
				return 1, nil
			}

			return -1, nil
		}
	}

	return 0, ErrColorAbsent
}

// FlipComplementarity computes the consequence of flipping the given
// color's sign on one voxel: every bond of that absolute color flips,
// which forces its partner bond to flip, which forces the partner voxel
// to flip in turn. The closure over partner links is returned as a
// {voxel id: new sign} assignment covering the whole connected
// component; the lattice itself is not mutated.
func (l *Lattice) FlipComplementarity(id, color int) (map[int]int, error) {
	if _, err := l.Complementarity(id, color); err != nil {
		return nil, err
	}

	flipped := make(map[int]int)
	queue := []int{id}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if _, done := flipped[v]; done {
			continue
		}
		comp, err := l.Complementarity(v, color)
		if err != nil {
			return nil, err
		}
		flipped[v] = -comp

		for _, d := range Directions() {
			b := l.bonds[v][d]
			if abs(b.Color) != color {
				continue
			}
			p := l.partners[v][d]
			if _, done := flipped[p.Voxel]; !done {
				queue = append(queue, p.Voxel)
			}
		}
	}

	return flipped, nil
}

// RepaintComplement forces the voxel's bonds of the given absolute color
// to the requested sign. When the voxel already matches, nothing
// changes; otherwise every matching bond is negated, which keeps
// same-voxel partner pairs mutually complementary. comp must be +1 or
// -1.
func (l *Lattice) RepaintComplement(id, color, comp int) error {
	cur, err := l.Complementarity(id, color)
	if err != nil {
		return err
	}
	if cur == comp {
		return nil
	}
	for _, d := range Directions() {
		b := l.bonds[id][d]
		if abs(b.Color) == color {
			l.bonds[id][d].Color = -b.Color
		}
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
