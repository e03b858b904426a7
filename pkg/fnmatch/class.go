package fnmatch

import "unicode"

// Range is an inclusive character range. A range with Lo > Hi is kept as
// written and contains nothing.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether r lies within the range.
func (r Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// Empty reports whether the bounds are inverted.
func (r Range) Empty() bool {
	return r.Lo > r.Hi
}

// Class is a bracket expression matching a single character.
type Class struct {
	Negated bool
	Members []rune
	Ranges  []Range
}

// Matches reports whether r is accepted by the class. When caseSensitive is
// false, r is also tested in its lower- and upper-case forms.
func (c Class) Matches(r rune, caseSensitive bool) bool {
	found := c.contains(r)
	if !found && !caseSensitive {
		found = c.contains(unicode.ToLower(r)) || c.contains(unicode.ToUpper(r))
	}

	return found != c.Negated
}

func (c Class) contains(r rune) bool {
	for _, m := range c.Members {
		if m == r {
			return true
		}
	}

	for _, rng := range c.Ranges {
		if rng.Contains(r) {
			return true
		}
	}

	return false
}

// parseClass parses the bracket expression whose '[' is at p[start]. It
// returns the class and the index just past its closing ']', or ok=false if
// the class is never closed.
func parseClass(p []rune, start int) (cls Class, end int, ok bool) {
	i := start + 1

	if i < len(p) && p[i] == '!' {
		cls.Negated = true
		i++
	}

	// The first character never closes the class, so "[]]" and "[!]]" hold a ']'.
	first := i

	for i < len(p) {
		if p[i] == ']' && i > first {
			return cls, i + 1, true
		}

		if p[i] != '-' && i+2 < len(p) && p[i+1] == '-' && p[i+2] != ']' {
			cls.Ranges = append(cls.Ranges, Range{Lo: p[i], Hi: p[i+2]})
			i += 3

			continue
		}

		cls.Members = append(cls.Members, p[i])
		i++
	}

	return Class{}, 0, false
}
