package fnmatch

import "unicode"

// Pattern is a compiled glob pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	source   string
	opts     Options
	segments []Segment
}

// New compiles pattern with the given options.
func New(pattern string, opts ...Option) *Pattern {
	o := newOptions(opts)

	return &Pattern{
		source:   pattern,
		opts:     o,
		segments: Parse(pattern, o.Globstar),
	}
}

// Match reports whether name matches pattern. It compiles the pattern on every
// call; use New to match many names against the same pattern.
func Match(pattern, name string, opts ...Option) bool {
	return New(pattern, opts...).Match(name)
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// Options returns the options the pattern was compiled with.
func (p *Pattern) Options() Options {
	return p.opts
}

// Segments returns a copy of the parsed segments.
func (p *Pattern) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Match reports whether the whole of name matches the pattern.
//
// The matcher tracks the set of positions in name that the segments seen so
// far can end at, so every segment is applied to each position at most once.
// Running time is bounded by len(segments) * len(name) regardless of how many
// wildcards the pattern holds.
func (p *Pattern) Match(name string) bool {
	s := []rune(name)
	n := len(s)

	cur := make([]bool, n+1)
	next := make([]bool, n+1)
	cur[0] = true

	for _, seg := range p.segments {
		clear(next)

		switch seg := seg.(type) {
		case Literal:
			for i := range n + 1 {
				if !cur[i] {
					continue
				}

				if end, ok := p.literalAt(seg.Text, s, i); ok {
					next[end] = true
				}
			}

		case AnyChar:
			for i := range n {
				next[i+1] = cur[i]
			}

		case Class:
			for i := range n {
				next[i+1] = cur[i] && seg.Matches(s[i], p.opts.CaseSensitive)
			}

		case AnyRun:
			reach := false

			for i := range n + 1 {
				reach = reach || cur[i]
				next[i] = reach

				if p.opts.Globstar && i < n && s[i] == '/' {
					reach = false
				}
			}

		case Recursive:
			reach := false

			for i := range n + 1 {
				if seg.Dir {
					next[i] = cur[i] || (reach && s[i-1] == '/')
				} else {
					next[i] = reach || cur[i]
				}

				reach = reach || cur[i]
			}
		}

		cur, next = next, cur

		if !anySet(cur) {
			return false
		}
	}

	return cur[n]
}

// literalAt matches text against name starting at index i and returns the
// index just past it.
func (p *Pattern) literalAt(text string, name []rune, i int) (int, bool) {
	for _, r := range text {
		if i >= len(name) || !p.equal(r, name[i]) {
			return 0, false
		}

		i++
	}

	return i, true
}

func (p *Pattern) equal(a, b rune) bool {
	if a == b {
		return true
	}

	if p.opts.CaseSensitive {
		return false
	}

	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}

func anySet(positions []bool) bool {
	for _, set := range positions {
		if set {
			return true
		}
	}

	return false
}
