package painter

import "io"

// Option mutates internal painting options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	trace io.Writer // nil ⇒ silent
}

// WithTrace directs human-readable painting diagnostics to w: every new
// color pair, every map-paint with parent/child ids and the operation
// applied, every mesovoxel adoption. Advisory output only; the painted
// result is identical with or without it.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.trace = w }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
