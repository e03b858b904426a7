package fnmatch

// Options control how a pattern is compiled and matched.
type Options struct {
	// CaseSensitive disables case folding of literals and classes.
	CaseSensitive bool
	// Globstar enables ** as a recursive wildcard and keeps * within a single
	// path component.
	Globstar bool
}

// Option represents a setting that can be passed to New, Match and NewSet.
type Option func(*Options)

// WithCaseSensitive is an option that makes literal characters and character
// classes compare exactly. Without it, both sides of every comparison are
// folded to a common case.
func WithCaseSensitive() Option {
	return func(o *Options) {
		o.CaseSensitive = true
	}
}

// WithGlobstar is an option that enables the recursive ** wildcard. When
// passed, * no longer matches the '/' separator.
func WithGlobstar() Option {
	return func(o *Options) {
		o.Globstar = true
	}
}

// WithOptions replaces all settings with the given values.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func newOptions(opts []Option) Options {
	var o Options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
