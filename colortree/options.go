package colortree

import "io"

// DefaultMaxCombos caps the number of cross-product combinations
// evaluated per search round. Large lattices can produce combinatorial
// blowups; the cap keeps one Optimize call bounded while the restart
// loop still converges on a (possibly sub-optimal) minimum.
const DefaultMaxCombos = 1 << 16

// Option mutates internal search options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
type Options struct {
	trace     io.Writer // nil ⇒ silent
	maxCombos int
}

// WithTrace directs search diagnostics to w: per-color candidate
// counts, combinations evaluated, and each new best-so-far count.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.trace = w }
}

// WithMaxCombos overrides the combination budget per search round.
// n must be positive; nonsensical values panic (programmer error).
func WithMaxCombos(n int) Option {
	if n <= 0 {
		panic("colortree: WithMaxCombos: n must be positive")
	}

	return func(o *Options) { o.maxCombos = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxCombos: DefaultMaxCombos}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
