package meso

import (
	"errors"

	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/relation"
	"github.com/katalvlaran/voxlath/symmetry"
)

// Partition-level errors.
var (
	// ErrUnmappable indicates the candidate shares no symmetry with any
	// group at all: the symmetry table and the seeding disagree.
	ErrUnmappable = errors.New("meso: no group shares symmetry with voxel")
	// ErrUndecided indicates symmetric groups exist but none can host
	// the candidate in its current coloring; retry after more painting.
	ErrUndecided = errors.New("meso: no group can host voxel yet")
)

// Verdict is the outcome of probing a candidate against one group.
type Verdict uint8

// CanMap verdicts.
const (
	// NoSymmetry: no operation relates the pair's surroundings.
	NoSymmetry Verdict = iota
	// Reject: some operation yields a no-relation color conflict.
	Reject
	// Defer: every operation is loose; not enough information yet.
	Defer
	// MapEqual: the candidate carries the group's exact bond pattern.
	MapEqual
	// MapNegation: the candidate carries the fully negated pattern.
	MapNegation
)

// Group is one equivalence class of interchangeable voxels. The first
// maplist entry is the representative; all members carry identical
// bonds once painting settles.
type Group struct {
	ID   int
	Role lattice.Role
	// Partner is the id of the complementary/structural counterpart
	// group, or -1 when none exists.
	Partner int

	maplist []int
}

// Rep returns the group's representative voxel id.
func (g *Group) Rep() int { return g.maplist[0] }

// Members returns the group's voxel ids in insertion order, the
// representative first. The slice is a copy.
func (g *Group) Members() []int {
	out := make([]int, len(g.maplist))
	copy(out, g.maplist)

	return out
}

// Partition is the mesovoxel: the evolving set of groups plus the
// voxel-to-group assignment.
type Partition struct {
	lat *lattice.Lattice
	tbl *symmetry.Table

	groups []*Group
	owner  []int // voxel id → group id, -1 while unassigned
}

// New seeds the partition with its structural groups. Voxels are
// scanned in ascending id order; a voxel founds a new group unless some
// symmetry relates it to an earlier founder.
func New(l *lattice.Lattice, tbl *symmetry.Table) (*Partition, error) {
	if l == nil || tbl == nil {
		return nil, symmetry.ErrNilLattice
	}
	p := &Partition{
		lat:   l,
		tbl:   tbl,
		owner: make([]int, l.NumVoxels()),
	}
	for i := range p.owner {
		p.owner[i] = -1
	}

	for id := 0; id < l.NumVoxels(); id++ {
		covered := false
		for _, b := range tbl.Symvoxels(id) {
			if b != id && p.owner[b] >= 0 {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		g := &Group{
			ID:      len(p.groups),
			Role:    lattice.RoleStructural,
			Partner: -1,
			maplist: []int{id},
		}
		p.groups = append(p.groups, g)
		p.owner[id] = g.ID
	}

	return p, nil
}

// Groups returns the live groups in creation order.
func (p *Partition) Groups() []*Group { return p.groups }

// NumGroups returns the current group count.
func (p *Partition) NumGroups() int { return len(p.groups) }

// Group returns the group with the given id, or nil.
func (p *Partition) Group(id int) *Group {
	if id < 0 || id >= len(p.groups) {
		return nil
	}

	return p.groups[id]
}

// Contains reports whether the voxel is assigned to some group.
func (p *Partition) Contains(v int) bool {
	return v >= 0 && v < len(p.owner) && p.owner[v] >= 0
}

// Owner returns the id of the group owning the voxel, or -1.
func (p *Partition) Owner(v int) int {
	if v < 0 || v >= len(p.owner) {
		return -1
	}

	return p.owner[v]
}

// CanMap probes whether the candidate can join the group. Every
// operation relating the candidate to the group's representative is
// consulted: one no-relation verdict rejects the group, an Equal
// verdict wins over any Negation verdict, and all-Loose defers.
func (p *Partition) CanMap(v int, g *Group) (Verdict, error) {
	symlist := p.tbl.Symlist(v, g.Rep())
	if len(symlist) == 0 {
		return NoSymmetry, nil
	}

	foundEqual, foundNegation := false, false
	for _, op := range symlist {
		kind, err := relation.Voxels(p.lat, v, g.Rep(), op)
		if err != nil {
			return Reject, err
		}
		switch kind {
		case relation.None:
			return Reject, nil
		case relation.Equal:
			foundEqual = true
		case relation.Negation:
			foundNegation = true
		}
	}
	switch {
	case foundEqual:
		return MapEqual, nil
	case foundNegation:
		return MapNegation, nil
	default:
		return Defer, nil
	}
}

// FindMesoparent returns the group the candidate should map into. The
// first group accepting without negation wins; failing that, the first
// group accepting with negation. When symmetric groups exist but every
// one defers or rejects, the result is ErrUndecided: the caller retries
// once more bonds are colored, or leaves the voxel as its own unit.
// ErrUnmappable fires only when no group shares any symmetry with the
// candidate, which callers treat as an internal-consistency failure.
func (p *Partition) FindMesoparent(v int) (g *Group, negation bool, err error) {
	var negationParent *Group
	symmetric := false
	for _, cand := range p.groups {
		verdict, err := p.CanMap(v, cand)
		if err != nil {
			return nil, false, err
		}
		if verdict != NoSymmetry {
			symmetric = true
		}
		switch verdict {
		case MapEqual:
			return cand, false, nil
		case MapNegation:
			if negationParent == nil {
				negationParent = cand
			}
		}
	}
	if negationParent != nil {
		return negationParent, true, nil
	}
	if symmetric {
		return nil, false, ErrUndecided
	}

	return nil, false, ErrUnmappable
}

// Add assigns the voxel to an existing group's maplist.
func (p *Partition) Add(v int, g *Group) {
	if p.Contains(v) {
		return
	}
	g.maplist = append(g.maplist, v)
	p.owner[v] = g.ID
}

// AddComplementary founds a new complementary group around the voxel
// and partners it with its parent both ways.
func (p *Partition) AddComplementary(v int, parent *Group) *Group {
	g := &Group{
		ID:      len(p.groups),
		Role:    lattice.RoleComplementary,
		Partner: parent.ID,
		maplist: []int{v},
	}
	p.groups = append(p.groups, g)
	p.owner[v] = g.ID
	parent.Partner = g.ID

	return g
}
