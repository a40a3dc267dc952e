package colortree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/voxlath/lattice"
	"github.com/katalvlaran/voxlath/painter"
	"github.com/katalvlaran/voxlath/symmetry"
)

// Config assigns a sign (+1 or -1) to every voxel carrying one
// absolute color.
type Config map[int]int

// Plan is the outcome of an optimization run.
type Plan struct {
	// Baseline is the unique-origami count of the as-painted lattice.
	Baseline int
	// Best is the count under Configs; never greater than Baseline.
	Best int
	// Configs holds the chosen configuration per absolute color.
	Configs map[int]Config
}

// Apply forces the plan's configuration onto a painted lattice.
func (p *Plan) Apply(l *lattice.Lattice) error {
	return applyConfigs(l, p.Configs)
}

// Optimize searches complementarity assignments minimizing the number
// of distinct unit types. The lattice must be fully painted; it is
// mutated during the search and left in the best configuration found.
func Optimize(l *lattice.Lattice, tbl *symmetry.Table, opts ...Option) (*Plan, error) {
	if l == nil || tbl == nil || tbl.NumVoxels() != l.NumVoxels() {
		return nil, painter.ErrNoSymmetry
	}
	o := gatherOptions(opts...)

	s := &search{lat: l, tbl: tbl, opts: o}
	dict, err := l.ColorDict()
	if err != nil {
		return nil, err
	}
	s.colors = make([]int, 0, len(dict))
	for c := range dict {
		s.colors = append(s.colors, c)
	}
	sort.Ints(s.colors)
	s.members = dict

	current, err := s.snapshotConfigs()
	if err != nil {
		return nil, err
	}
	baseline, err := s.uniqueCount()
	if err != nil {
		return nil, err
	}
	s.tracef("baseline: %d unique origami over %d colors", baseline, len(s.colors))

	best := baseline
	for {
		all, err := s.enumerateAll(current)
		if err != nil {
			return nil, err
		}
		reduced, err := s.reduce(current, all)
		if err != nil {
			return nil, err
		}
		combo, count, err := s.crossProduct(current, reduced)
		if err != nil {
			return nil, err
		}
		if count >= best {
			break
		}
		// Strict improvement: adopt the combination as the new default
		// and restart the reduction over the shrunk space.
		s.tracef("improved to %d unique origami; restarting reduction", count)
		best = count
		current = combo
		if err := applyConfigs(l, current); err != nil {
			return nil, err
		}
	}

	if err := applyConfigs(l, current); err != nil {
		return nil, err
	}

	return &Plan{Baseline: baseline, Best: best, Configs: current}, nil
}

type search struct {
	lat     *lattice.Lattice
	tbl     *symmetry.Table
	opts    Options
	colors  []int
	members map[int][]int
}

func (s *search) tracef(format string, args ...any) {
	if s.opts.trace == nil {
		return
	}
	fmt.Fprintf(s.opts.trace, format+"\n", args...)
}

func (s *search) uniqueCount() (int, error) {
	unique, err := painter.UniqueOrigami(s.lat, s.tbl)
	if err != nil {
		return 0, err
	}

	return len(unique), nil
}

// snapshotConfigs reads the lattice's current per-color signs.
func (s *search) snapshotConfigs() (map[int]Config, error) {
	out := make(map[int]Config, len(s.colors))
	for _, c := range s.colors {
		cfg := make(Config, len(s.members[c]))
		for _, v := range s.members[c] {
			comp, err := s.lat.Complementarity(v, c)
			if err != nil {
				return nil, err
			}
			cfg[v] = comp
		}
		out[c] = cfg
	}

	return out, nil
}

// enumerateAll generates the candidate configurations of every color
// relative to the given default state: the default itself plus every
// subset flip, each flip propagated transitively through bond partners
// and the results deduplicated.
func (s *search) enumerateAll(current map[int]Config) (map[int][]Config, error) {
	if err := applyConfigs(s.lat, current); err != nil {
		return nil, err
	}
	out := make(map[int][]Config, len(s.colors))
	for _, c := range s.colors {
		configs, err := s.enumerate(c, current[c])
		if err != nil {
			return nil, err
		}
		out[c] = configs
	}

	return out, nil
}

func (s *search) enumerate(color int, def Config) ([]Config, error) {
	ids := s.members[color]
	configs := []Config{cloneConfig(def)}
	seen := map[string]struct{}{configKey(def): {}}

	// Flip maps per voxel, all computed against the default state.
	flips := make(map[int]map[int]int, len(ids))
	for _, v := range ids {
		f, err := s.lat.FlipComplementarity(v, color)
		if err != nil {
			return nil, err
		}
		flips[v] = f
	}

	combo := make([]int, 0, len(ids))
	var walk func(start int)
	walk = func(start int) {
		if len(combo) > 0 {
			cfg := cloneConfig(def)
			for _, v := range combo {
				for id, sign := range flips[v] {
					cfg[id] = sign
				}
			}
			key := configKey(cfg)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				configs = append(configs, cfg)
			}
		}
		for i := start; i < len(ids); i++ {
			combo = append(combo, ids[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)

	return configs, nil
}

// reduce keeps, per color, only the configurations minimizing the
// unique-origami count when applied in isolation on top of the default.
func (s *search) reduce(current map[int]Config, all map[int][]Config) (map[int][]Config, error) {
	out := make(map[int][]Config, len(s.colors))
	for _, c := range s.colors {
		var best []Config
		min := -1
		for _, cfg := range all[c] {
			if err := applyConfigs(s.lat, current); err != nil {
				return nil, err
			}
			if err := applyConfigs(s.lat, map[int]Config{c: cfg}); err != nil {
				return nil, err
			}
			count, err := s.uniqueCount()
			if err != nil {
				return nil, err
			}
			switch {
			case min < 0 || count < min:
				min = count
				best = []Config{cfg}
			case count == min:
				best = append(best, cfg)
			}
		}
		s.tracef("color %d: %d of %d configurations survive reduction (count %d)",
			c, len(best), len(all[c]), min)
		out[c] = best
	}
	if err := applyConfigs(s.lat, current); err != nil {
		return nil, err
	}

	return out, nil
}

// crossProduct evaluates combinations of one reduced configuration per
// color, in mixed-radix order, within the combination budget.
func (s *search) crossProduct(current map[int]Config, reduced map[int][]Config) (map[int]Config, int, error) {
	total := 1
	for _, c := range s.colors {
		total *= len(reduced[c])
		if total > s.opts.maxCombos {
			total = s.opts.maxCombos
			break
		}
	}
	s.tracef("searching %d combinations", total)

	bestCombo := cloneConfigs(current)
	bestCount := -1
	idx := make([]int, len(s.colors))
	for evaluated := 0; evaluated < total; evaluated++ {
		combo := make(map[int]Config, len(s.colors))
		for i, c := range s.colors {
			combo[c] = reduced[c][idx[i]]
		}
		if err := applyConfigs(s.lat, combo); err != nil {
			return nil, 0, err
		}
		count, err := s.uniqueCount()
		if err != nil {
			return nil, 0, err
		}
		if bestCount < 0 || count < bestCount {
			bestCount = count
			bestCombo = cloneConfigs(combo)
			s.tracef("combination %d: new best %d", evaluated+1, count)
		}

		// Advance the mixed-radix counter.
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(reduced[s.colors[i]]) {
				break
			}
			idx[i] = 0
		}
	}
	if err := applyConfigs(s.lat, current); err != nil {
		return nil, 0, err
	}

	return bestCombo, bestCount, nil
}

// applyConfigs forces the given per-color signs onto the lattice, in
// ascending color and voxel order for reproducibility.
func applyConfigs(l *lattice.Lattice, cfgs map[int]Config) error {
	colors := make([]int, 0, len(cfgs))
	for c := range cfgs {
		colors = append(colors, c)
	}
	sort.Ints(colors)
	for _, c := range colors {
		ids := make([]int, 0, len(cfgs[c]))
		for v := range cfgs[c] {
			ids = append(ids, v)
		}
		sort.Ints(ids)
		for _, v := range ids {
			if err := l.RepaintComplement(v, c, cfgs[c][v]); err != nil {
				return err
			}
		}
	}

	return nil
}

// configKey renders a configuration as a canonical string for
// deduplication.
func configKey(c Config) string {
	ids := make([]int, 0, len(c))
	for v := range c {
		ids = append(ids, v)
	}
	sort.Ints(ids)
	key := make([]byte, 0, len(ids)*6)
	for _, v := range ids {
		key = fmt.Appendf(key, "%d:%d;", v, c[v])
	}

	return string(key)
}

func cloneConfig(c Config) Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

func cloneConfigs(m map[int]Config) map[int]Config {
	out := make(map[int]Config, len(m))
	for k, v := range m {
		out[k] = cloneConfig(v)
	}

	return out
}
