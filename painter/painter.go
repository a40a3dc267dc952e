package painter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/meso"
	"github.com/katalvlaran/voxlath/rotation"
	"github.com/katalvlaran/voxlath/symmetry"
)

// Painting errors.
var (
	// ErrNoSymmetry indicates a missing or mismatched symmetry table.
	ErrNoSymmetry = errors.New("painter: symmetry table missing or mismatched")
	// ErrInconsistent indicates a voxel sharing no symmetry with any
	// mesovoxel group; seeding and the table disagree.
	ErrInconsistent = errors.New("painter: voxel shares no symmetry with any mesovoxel group")
)

// Result is the outcome of a full paint: the number of distinct
// absolute colors used and the final mesovoxel partition.
type Result struct {
	Colors int
	Meso   *meso.Partition
}

// Paint colors every bond of the lattice in place and returns the
// resulting palette size and mesovoxel. The lattice must be freshly
// built (all bonds blank) and the table must come from Compute on the
// same lattice.
func Paint(l *lattice.Lattice, tbl *symmetry.Table, opts ...Option) (*Result, error) {
	if l == nil || tbl == nil {
		return nil, ErrNoSymmetry
	}
	if tbl.NumVoxels() != l.NumVoxels() {
		return nil, ErrNoSymmetry
	}
	part, err := meso.New(l, tbl)
	if err != nil {
		return nil, err
	}

	p := &painter{
		lat:        l,
		tbl:        tbl,
		part:       part,
		opts:       gatherOptions(opts...),
		painted:    make(map[int]struct{}),
		candidates: make(map[int]struct{}),
	}
	p.tracef("mesovoxel seeded with %d structural groups", part.NumGroups())

	if err := p.paintStructural(); err != nil {
		return nil, err
	}
	if err := p.paintComplementary(); err != nil {
		return nil, err
	}

	return &Result{Colors: p.nColors, Meso: part}, nil
}

type painter struct {
	lat  *lattice.Lattice
	tbl  *symmetry.Table
	part *meso.Partition
	opts Options

	nColors int

	// Worklists. painted holds voxels whose new bonds still need
	// self-symmetry propagation; candidates holds voxels awaiting
	// mesovoxel adoption.
	painted    map[int]struct{}
	candidates map[int]struct{}
}

func (p *painter) tracef(format string, args ...any) {
	if p.opts.trace == nil {
		return
	}
	fmt.Fprintf(p.opts.trace, format+"\n", args...)
}

// popMin removes and returns the smallest voxel id in the set.
// Deterministic drain order keeps whole runs reproducible.
func popMin(set map[int]struct{}) int {
	min := -1
	for v := range set {
		if min < 0 || v < min {
			min = v
		}
	}
	delete(set, min)

	return min
}

func addAll(set map[int]struct{}, ids []int) {
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// paintStructural is phase 1: a fresh color pair on every blank bond
// between two structural representatives, each propagated through
// self-symmetries before the next is placed.
func (p *painter) paintStructural() error {
	for _, g := range p.part.Groups() {
		s := g.Rep()
		for _, d := range lattice.Directions() {
			bond, err := p.lat.Bond(s, d)
			if err != nil {
				return err
			}
			ref, err := p.lat.Partner(lattice.BondRef{Voxel: s, Dir: d})
			if err != nil {
				return err
			}
			partnerBond, err := p.lat.Bond(ref.Voxel, ref.Dir)
			if err != nil {
				return err
			}
			if bond.Colored || partnerBond.Colored {
				continue
			}
			if !p.part.Contains(ref.Voxel) {
				continue
			}

			p.nColors++
			if err := p.paintPair(s, d, p.nColors, lattice.RoleStructural); err != nil {
				return err
			}
			p.tracef("new structural color %d between voxel %d (%s) and voxel %d (%s)",
				p.nColors, s, d, ref.Voxel, ref.Dir)
			addAll(p.painted, []int{s, ref.Voxel})

			if err := p.drainPainted(); err != nil {
				return err
			}
		}
	}

	return nil
}

// paintComplementary is phase 2: a fresh color pair on every remaining
// blank bond, alternating self-symmetry propagation with mesovoxel
// adoption until both worklists drain.
func (p *painter) paintComplementary() error {
	for v := 0; v < p.lat.NumVoxels(); v++ {
		for _, d := range lattice.Directions() {
			bond, err := p.lat.Bond(v, d)
			if err != nil {
				return err
			}
			ref, err := p.lat.Partner(lattice.BondRef{Voxel: v, Dir: d})
			if err != nil {
				return err
			}
			partnerBond, err := p.lat.Bond(ref.Voxel, ref.Dir)
			if err != nil {
				return err
			}
			if bond.Colored || partnerBond.Colored {
				continue
			}

			p.nColors++
			if err := p.paintPair(v, d, p.nColors, lattice.RoleComplementary); err != nil {
				return err
			}
			p.tracef("new complementary color %d between voxel %d (%s) and voxel %d (%s)",
				p.nColors, v, d, ref.Voxel, ref.Dir)
			addAll(p.painted, []int{v, ref.Voxel})
			addAll(p.candidates, []int{v, ref.Voxel})

			for {
				if err := p.drainPainted(); err != nil {
					return err
				}
				if err := p.drainCandidates(); err != nil {
					return err
				}
				if len(p.painted) == 0 && len(p.candidates) == 0 {
					break
				}
			}
		}
	}

	return nil
}

// drainPainted propagates self-symmetries of every voxel in the painted
// worklist; newly touched voxels re-enter both worklists.
func (p *painter) drainPainted() error {
	for len(p.painted) > 0 {
		v := popMin(p.painted)
		pv, err := p.selfSymPaint(v)
		if err != nil {
			return err
		}
		addAll(p.painted, pv)
		addAll(p.candidates, pv)
	}

	return nil
}

// drainCandidates adopts candidate voxels into the mesovoxel one by
// one, mapping the adopting group's pattern onto each.
func (p *painter) drainCandidates() error {
	for len(p.candidates) > 0 {
		v := popMin(p.candidates)

		g, negation, err := p.part.FindMesoparent(v)
		if errors.Is(err, meso.ErrUndecided) {
			// No group can host it in its current coloring; a later
			// repaint re-queues it.
			continue
		}
		if errors.Is(err, meso.ErrUnmappable) {
			return fmt.Errorf("%w: voxel %d", ErrInconsistent, v)
		}
		if err != nil {
			return err
		}

		// A negation match against a group that already has a partner
		// means the voxel belongs to the partner directly.
		if negation && g.Partner >= 0 {
			g = p.part.Group(g.Partner)
			negation = false
			p.tracef("redirecting voxel %d to partner group %d", v, g.ID)
		}
		p.tracef("voxel %d adopts group %d as mesoparent (negation=%t)", v, g.ID, negation)

		pv, err := p.mapPaintFirstSafe(g.Rep(), v, negation)
		if err != nil {
			return err
		}
		addAll(p.painted, pv)
		addAll(p.candidates, pv)

		// Push the candidate's information back onto every group member,
		// and onto the partner group with flipped sign.
		pv, err = p.updateGroup(g, v, negation)
		if err != nil {
			return err
		}
		if g.Partner >= 0 {
			pv2, err := p.updateGroup(p.part.Group(g.Partner), v, !negation)
			if err != nil {
				return err
			}
			pv = append(pv, pv2...)
		}
		addAll(p.painted, pv)
		addAll(p.candidates, pv)

		if p.part.Contains(v) {
			continue
		}
		if negation {
			comp := p.part.AddComplementary(v, g)
			p.tracef("voxel %d founds complementary group %d partnered with %d", v, comp.ID, g.ID)
		} else {
			p.part.Add(v, g)
			p.tracef("voxel %d joins group %d", v, g.ID)
		}
	}

	return nil
}

// selfSymPaint maps a voxel's bond pattern onto itself under each of
// its nontrivial self-symmetries, filling blank slots.
func (p *painter) selfSymPaint(v int) ([]int, error) {
	var painted []int
	for _, op := range p.tbl.SelfSymlist(v) {
		pv, applied, err := p.mapPaint(v, v, op, false)
		if err != nil {
			return nil, err
		}
		if applied {
			painted = append(painted, pv...)
		}
	}

	return painted, nil
}

// mapPaintFirstSafe tries the operations relating parent to child in
// registry order and applies the first whose application keeps the
// child palindrome-free. Exhausting all candidates without applying is
// not an error; the child simply gains no new bonds this round.
func (p *painter) mapPaintFirstSafe(parent, child int, negate bool) ([]int, error) {
	for _, op := range p.tbl.Symlist(parent, child) {
		pv, applied, err := p.mapPaint(parent, child, op, negate)
		if err != nil {
			return nil, err
		}
		if applied {
			p.tracef("map-paint voxel %d onto voxel %d via %s (negate=%t)", parent, child, op, negate)

			return pv, nil
		}
	}

	return nil, nil
}

// updateGroup maps the new voxel's pattern onto every existing member
// of the group, spreading freshly learned colors.
func (p *painter) updateGroup(g *meso.Group, v int, negate bool) ([]int, error) {
	var painted []int
	for _, m := range g.Members() {
		pv, err := p.mapPaintFirstSafe(v, m, negate)
		if err != nil {
			return nil, err
		}
		painted = append(painted, pv...)
	}

	return painted, nil
}

// paintPair colors a bond and its partner with complementary colors.
func (p *painter) paintPair(v int, d lattice.Direction, color int, role lattice.Role) error {
	if err := p.lat.SetBond(v, d, color, role); err != nil {
		return err
	}
	ref, err := p.lat.Partner(lattice.BondRef{Voxel: v, Dir: d})
	if err != nil {
		return err
	}

	return p.lat.SetBond(ref.Voxel, ref.Dir, -color, role)
}

// mapPaint copies the parent's bonds, rotated by op, onto the child's
// blank slots, painting each slot's partner with the complement.
// Non-structural colors are negated when negate is set and land as
// mapped bonds; structural colors copy unchanged. The whole operation
// is applied atomically or not at all: if any prospective slot would
// give some voxel both a color and its negation (outside a mutual
// partner pair), mapPaint reports applied=false and paints nothing.
func (p *painter) mapPaint(parent, child int, op rotation.Op, negate bool) (painted []int, applied bool, err error) {
	rotated, err := p.lat.RotatedBonds(parent, op)
	if err != nil {
		return nil, false, err
	}
	childBonds, err := p.lat.Bonds(child)
	if err != nil {
		return nil, false, err
	}

	type slot struct {
		d     lattice.Direction
		color int
		role  lattice.Role
	}
	var slots []slot
	for _, d := range lattice.Directions() {
		src := rotated[d]
		if childBonds[d].Colored || !src.Colored {
			continue
		}
		color, role := src.Color, src.Role
		if role != lattice.RoleStructural {
			if negate {
				color = -color
			}
			role = lattice.RoleMapped
		}
		slots = append(slots, slot{d: d, color: color, role: role})
	}
	if len(slots) == 0 {
		return nil, true, nil
	}

	// Prospective additions per voxel, child slots and partner slots.
	adds := make(map[int]map[lattice.Direction]int)
	addTo := func(v int, d lattice.Direction, c int) {
		if adds[v] == nil {
			adds[v] = make(map[lattice.Direction]int)
		}
		adds[v][d] = c
	}
	for _, s := range slots {
		addTo(child, s.d, s.color)
		ref, err := p.lat.Partner(lattice.BondRef{Voxel: child, Dir: s.d})
		if err != nil {
			return nil, false, err
		}
		addTo(ref.Voxel, ref.Dir, -s.color)
	}
	for v, am := range adds {
		ok, err := p.palindromeFree(v, am)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
	}

	seen := make(map[int]struct{})
	for _, s := range slots {
		// A previous slot's partner paint may have filled this one
		// (mutual partner pair on a 1-wide axis).
		cur, err := p.lat.Bond(child, s.d)
		if err != nil {
			return nil, false, err
		}
		if cur.Colored {
			continue
		}
		if err := p.paintPair(child, s.d, s.color, s.role); err != nil {
			return nil, false, err
		}
		ref, err := p.lat.Partner(lattice.BondRef{Voxel: child, Dir: s.d})
		if err != nil {
			return nil, false, err
		}
		if _, dup := seen[ref.Voxel]; !dup {
			seen[ref.Voxel] = struct{}{}
			painted = append(painted, ref.Voxel)
		}
	}
	sort.Ints(painted)

	return painted, true, nil
}

// palindromeFree reports whether the voxel, with the prospective
// additions applied on top of its current colors, avoids holding any
// color alongside its negation. Two slots that are each other's
// partners are exempt: on a 1-wide axis a bond partners a bond of the
// same voxel and the pair is complementary by construction.
func (p *painter) palindromeFree(v int, additions map[lattice.Direction]int) (bool, error) {
	bonds, err := p.lat.Bonds(v)
	if err != nil {
		return false, err
	}
	colors := make(map[lattice.Direction]int, lattice.NumDirections)
	for _, d := range lattice.Directions() {
		if bonds[d].Colored {
			colors[d] = bonds[d].Color
		}
	}
	for d, c := range additions {
		colors[d] = c
	}

	for _, d1 := range lattice.Directions() {
		c1, ok := colors[d1]
		if !ok {
			continue
		}
		for _, d2 := range lattice.Directions() {
			if d2 <= d1 {
				continue
			}
			c2, ok := colors[d2]
			if !ok || c1 != -c2 {
				continue
			}
			ref, err := p.lat.Partner(lattice.BondRef{Voxel: v, Dir: d1})
			if err != nil {
				return false, err
			}
			if ref.Voxel == v && ref.Dir == d2 {
				continue // mutual partner pair
			}

			return false, nil
		}
	}

	return true, nil
}
