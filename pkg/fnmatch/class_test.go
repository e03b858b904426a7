package fnmatch_test

import (
	"strings"
	"testing"

	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// alphabet holds the single-character names the class tests sweep over.
type alphabet struct {
	lower, upper, digits, punct []string
}

func newAlphabet() alphabet {
	var a alphabet

	span := func(dst *[]string, lo, hi rune) {
		for r := lo; r <= hi; r++ {
			*dst = append(*dst, string(r))
		}
	}

	span(&a.lower, 'a', 'z')
	span(&a.upper, 'A', 'Z')
	span(&a.digits, '0', '9')
	span(&a.punct, '!', '/')
	span(&a.punct, ':', '@')
	span(&a.punct, '\\', '`')
	span(&a.punct, '{', '~')

	return a
}

// mixed returns the characters whose case cannot change a class verdict
// against lower-case classes.
func (a alphabet) mixed() []string {
	out := append([]string{}, a.lower...)
	out = append(out, a.digits...)

	return append(out, a.punct...)
}

func assertClass(t *testing.T, pattern string, names []string, want func(c string) bool) {
	t.Helper()

	p := fnmatch.New(pattern)

	for _, c := range names {
		if got := p.Match(c); got != want(c) {
			t.Errorf("Match(%q, %q) = %v, want %v", pattern, c, got, want(c))
		}
	}
}

func in(set string) func(string) bool {
	return func(c string) bool { return strings.Contains(set, c) }
}

func notIn(set string) func(string) bool {
	return func(c string) bool { return !strings.Contains(set, c) }
}

func is(want bool) func(string) bool {
	return func(string) bool { return want }
}

func TestCharSet(t *testing.T) {
	t.Parallel()

	a := newAlphabet()
	chars := a.mixed()

	assertClass(t, "[az]", chars, in("az"))
	assertClass(t, "[!az]", chars, notIn("az"))

	assertClass(t, "[AZ]", chars, in("az"))
	assertClass(t, "[!AZ]", chars, notIn("az"))

	assertClass(t, "[az]", a.upper, in("AZ"))
	assertClass(t, "[!az]", a.upper, notIn("AZ"))

	assertClass(t, "[aa]", chars, in("a"))

	assertClass(t, "[^az]", chars, in("^az"))
	assertClass(t, "[[az]", chars, in("[az"))
	assertClass(t, "[!]]", chars, notIn("]"))
}

func TestRange(t *testing.T) {
	t.Parallel()

	a := newAlphabet()
	chars := a.mixed()

	assertClass(t, "[b-d]", chars, in("bcd"))
	assertClass(t, "[!b-d]", chars, notIn("bcd"))
	assertClass(t, "[b-dx-z]", chars, in("bcdxyz"))
	assertClass(t, "[!b-dx-z]", chars, notIn("bcdxyz"))

	assertClass(t, "[B-D]", chars, in("bcd"))
	assertClass(t, "[!B-D]", chars, notIn("bcd"))
	assertClass(t, "[b-d]", a.upper, in("BCD"))
	assertClass(t, "[!b-d]", a.upper, notIn("BCD"))

	assertClass(t, "[b-b]", chars, in("b"))

	assertClass(t, "[!-#]", chars, notIn("-#"))
	assertClass(t, "[!--.]", chars, notIn("-."))
	assertClass(t, "[^-`]", chars, in("^_`"))
	assertClass(t, "[[-^]", chars, in(`[\]^`))
	assertClass(t, `[\-^]`, chars, in(`\]^`))
	assertClass(t, "[b-]", chars, in("-b"))
	assertClass(t, "[!b-]", chars, notIn("-b"))
	assertClass(t, "[-b]", chars, in("-b"))
	assertClass(t, "[!-b]", chars, notIn("-b"))
	assertClass(t, "[-]", chars, in("-"))
	assertClass(t, "[!-]", chars, notIn("-"))
}

func TestInvertedRange(t *testing.T) {
	t.Parallel()

	a := newAlphabet()
	chars := a.mixed()

	assertClass(t, "[d-b]", chars, is(false))
	assertClass(t, "[!d-b]", chars, is(true))
	assertClass(t, "[d-bx-z]", chars, in("xyz"))
	assertClass(t, "[!d-bx-z]", chars, notIn("xyz"))
	assertClass(t, "[d-b^-`]", chars, in("^_`"))
	assertClass(t, "[d-b[-^]", chars, in(`[\]^`))
}

func TestDuplicateMembers(t *testing.T) {
	t.Parallel()

	chars := newAlphabet().mixed()

	for _, c := range chars {
		if fnmatch.Match("[aa]", c) != fnmatch.Match("[a]", c) {
			t.Errorf("[aa] and [a] disagree on %q", c)
		}

		if fnmatch.Match("[cab]", c) != fnmatch.Match("[abc]", c) {
			t.Errorf("[cab] and [abc] disagree on %q", c)
		}
	}
}

func TestClassMatches(t *testing.T) {
	t.Parallel()

	cls := fnmatch.Class{Members: []rune{'x'}, Ranges: []fnmatch.Range{{Lo: 'd', Hi: 'b'}, {Lo: 'A', Hi: 'C'}}}

	tests := []struct {
		r             rune
		caseSensitive bool
		want          bool
	}{
		{'x', true, true},
		{'X', true, false},
		{'X', false, true},
		{'c', true, false},
		{'c', false, true},
		{'B', true, true},
		{'d', false, false},
	}

	for _, tt := range tests {
		if got := cls.Matches(tt.r, tt.caseSensitive); got != tt.want {
			t.Errorf("Matches(%q, %v) = %v, want %v", tt.r, tt.caseSensitive, got, tt.want)
		}
	}

	if !(fnmatch.Range{Lo: 'd', Hi: 'b'}).Empty() {
		t.Error("inverted range is not empty")
	}
}
