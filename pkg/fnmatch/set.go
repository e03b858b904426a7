package fnmatch

// Set holds several compiled patterns sharing the same options.
type Set struct {
	patterns []*Pattern
}

// NewSet compiles the given patterns into a reusable set.
func NewSet(patterns []string, opts ...Option) *Set {
	set := &Set{patterns: make([]*Pattern, len(patterns))}

	for idx, p := range patterns {
		set.patterns[idx] = New(p, opts...)
	}

	return set
}

// MatchAny reports whether name matches any pattern of the set.
// An empty set matches nothing.
func (s *Set) MatchAny(name string) bool {
	for _, p := range s.patterns {
		if p.Match(name) {
			return true
		}
	}

	return false
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the source patterns in the order they were given.
func (s *Set) Patterns() []string {
	sources := make([]string, len(s.patterns))

	for idx, p := range s.patterns {
		sources[idx] = p.String()
	}

	return sources
}
