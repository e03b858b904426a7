package fnmatch

import (
	"regexp"
	"strings"
)

// dialect holds the differences between the regex flavours a pattern is
// translated for.
type dialect struct {
	// end anchors the expression at the end of the subject.
	end string
	// bareBracket leaves a ']' unescaped when it opens a class, as in "[]]".
	bareBracket bool
}

//nolint:gochecknoglobals // immutable dialect descriptors
var (
	// portable is the classic fnmatch translation: "\Z" is the absolute end of
	// input in the flavour the output is written for.
	portable = dialect{end: `\Z`, bareBracket: true}
	// dotnet is the flavour of regexp2, where "\Z" also matches before a final
	// newline and "\z" is the absolute end.
	dotnet = dialect{end: `\z`}
)

// Translate returns the source of a regular expression equivalent to pattern.
//
// The expression runs in dot-matches-newline mode and is anchored at the end,
// but not at the start: callers anchor it themselves, as a match from the
// beginning of the subject. Translate always describes case-sensitive matching
// without globstar.
//
// Consecutive stars are squashed. Every star that is followed by another star
// later in the pattern is emitted as an atomic group that stops at the first
// occurrence of the fixed text up to that next star. Only the last star is a
// plain greedy ".*". This keeps matching time polynomial for patterns such as
// "**a*a****a".
//
// Results of separate calls may be joined with "|" into one expression.
func Translate(pattern string) string {
	return translate(pattern, portable)
}

func translate(pattern string, d dialect) string {
	segments := Parse(pattern, false)

	var b strings.Builder

	b.WriteString("(?s:")

	i := 0

	// Fixed text before the first star.
	for ; i < len(segments) && !isStar(segments[i]); i++ {
		writeFixed(&b, segments[i], d)
	}

	for i < len(segments) {
		for i < len(segments) && isStar(segments[i]) {
			i++
		}

		if i == len(segments) {
			b.WriteString(".*")

			break
		}

		var fixed strings.Builder

		for ; i < len(segments) && !isStar(segments[i]); i++ {
			writeFixed(&fixed, segments[i], d)
		}

		if i == len(segments) {
			b.WriteString(".*")
			b.WriteString(fixed.String())
		} else {
			b.WriteString("(?>.*?")
			b.WriteString(fixed.String())
			b.WriteString(")")
		}
	}

	b.WriteString(")")
	b.WriteString(d.end)

	return b.String()
}

func writeFixed(b *strings.Builder, seg Segment, d dialect) {
	switch seg := seg.(type) {
	case Literal:
		b.WriteString(regexp.QuoteMeta(seg.Text))
	case AnyChar:
		b.WriteString(".")
	case Class:
		writeClass(b, seg, d)
	}
}

// writeClass emits cls as a regex class. Inverted ranges are left out, so a
// class that ends up empty becomes a never-matching group, or any character
// when negated.
func writeClass(b *strings.Builder, cls Class, d dialect) {
	var body strings.Builder

	for _, m := range cls.Members {
		writeClassRune(&body, m, body.Len() == 0, d)
	}

	for _, rng := range cls.Ranges {
		if rng.Empty() {
			continue
		}

		writeClassRune(&body, rng.Lo, body.Len() == 0, d)
		body.WriteByte('-')
		writeClassRune(&body, rng.Hi, false, d)
	}

	switch {
	case body.Len() == 0 && cls.Negated:
		b.WriteString(".")
	case body.Len() == 0:
		b.WriteString("(?!)")
	case cls.Negated:
		b.WriteString("[^")
		b.WriteString(body.String())
		b.WriteString("]")
	default:
		b.WriteString("[")
		b.WriteString(body.String())
		b.WriteString("]")
	}
}

func writeClassRune(b *strings.Builder, r rune, first bool, d dialect) {
	switch r {
	case '\\', '-', '[':
		b.WriteByte('\\')
	case '^':
		if first {
			b.WriteByte('\\')
		}
	case ']':
		if !first || !d.bareBracket {
			b.WriteByte('\\')
		}
	}

	b.WriteRune(r)
}
