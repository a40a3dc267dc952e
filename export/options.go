package export

// Option mutates internal table options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
type Options struct {
	roles bool // false ⇒ color values, true ⇒ role labels
}

// WithColors renders bond columns as signed color values (default).
func WithColors() Option {
	return func(o *Options) { o.roles = false }
}

// WithRoles renders bond columns as role labels instead of colors.
func WithRoles() Option {
	return func(o *Options) { o.roles = true }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
