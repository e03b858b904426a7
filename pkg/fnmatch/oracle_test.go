package fnmatch_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// combine returns every sequence of 1..maxLen items from tokens joined by sep.
func combine(tokens []string, maxLen int) [][]string {
	var out [][]string

	var walk func(prefix []string)

	walk = func(prefix []string) {
		if len(prefix) > 0 {
			out = append(out, append([]string{}, prefix...))
		}

		if len(prefix) == maxLen {
			return
		}

		for _, tok := range tokens {
			walk(append(prefix, tok))
		}
	}

	walk(nil)

	return out
}

// TestGobwasParity compares non-globstar matching with github.com/gobwas/glob
// over every small pattern and name in a reduced alphabet.
func TestGobwasParity(t *testing.T) {
	t.Parallel()

	patterns := combine([]string{"a", "b", "*", "?", "[ab]", "[!a]", "[a-b]"}, 3)
	names := combine([]string{"a", "b", "c"}, 4)

	for _, parts := range patterns {
		pattern := strings.Join(parts, "")

		oracle, err := glob.Compile(pattern)
		if err != nil {
			t.Fatalf("glob.Compile(%q): %v", pattern, err)
		}

		ours := fnmatch.New(pattern, fnmatch.WithCaseSensitive())

		for _, n := range names {
			name := strings.Join(n, "")

			if got, want := ours.Match(name), oracle.Match(name); got != want {
				t.Errorf("Match(%q, %q) = %v, gobwas/glob says %v", pattern, name, got, want)
			}
		}
	}
}

// TestDoublestarParity compares globstar matching with
// github.com/bmatcuk/doublestar/v4 for whole-component patterns.
func TestDoublestarParity(t *testing.T) {
	t.Parallel()

	patterns := combine([]string{"a", "b", "*", "**", "a*", "*b"}, 3)
	names := combine([]string{"a", "b", "ab"}, 3)

	for _, parts := range patterns {
		// A trailing ** also matches the parent directory in doublestar.
		if parts[len(parts)-1] == "**" {
			continue
		}

		pattern := strings.Join(parts, "/")
		ours := fnmatch.New(pattern, fnmatch.WithCaseSensitive(), fnmatch.WithGlobstar())

		for _, n := range names {
			name := strings.Join(n, "/")

			want, err := doublestar.Match(pattern, name)
			if err != nil {
				t.Fatalf("doublestar.Match(%q, %q): %v", pattern, name, err)
			}

			if got := ours.Match(name); got != want {
				t.Errorf("Match(%q, %q) = %v, doublestar says %v", pattern, name, got, want)
			}
		}
	}
}

func TestStarMatchesEverything(t *testing.T) {
	t.Parallel()

	names := []string{"", "a", "\n", "foo\nbar\n", "a/b/c", `a\b`, "☺☺", "[!]"}

	for _, name := range names {
		if !fnmatch.Match("*", name) {
			t.Errorf("Match(*, %q) = false", name)
		}
	}
}

func TestQuestionMatchesOneCharacter(t *testing.T) {
	t.Parallel()

	names := []string{"", "a", "ab", "\n", "/", "☺", "☺☺", "\u00e9", "e\u0301"}

	for _, name := range names {
		want := utf8.RuneCountInString(name) == 1
		if got := fnmatch.Match("?", name); got != want {
			t.Errorf("Match(?, %q) = %v, want %v", name, got, want)
		}
	}
}

// TestCaseSensitiveIsStricter checks that every case-sensitive match of the
// golden corpus is also a case-insensitive match. Negated classes are left
// out: folding widens the excluded set, so "[!a]" accepts "A" only when
// matching case-sensitively.
func TestCaseSensitiveIsStricter(t *testing.T) {
	t.Parallel()

	forEachCase(t, func(t *testing.T, tc Case) {
		t.Helper()

		if strings.Contains(tc.Pattern, "[!") {
			t.Skip("negated class")
		}

		for _, name := range []string{tc.Name, strings.ToUpper(tc.Name), strings.ToLower(tc.Name)} {
			strict := fnmatch.Match(tc.Pattern, name, fnmatch.WithCaseSensitive())
			loose := fnmatch.Match(tc.Pattern, name)

			if strict && !loose {
				t.Errorf("Match(%q, %q) is case-sensitive only", tc.Pattern, name)
			}
		}
	})
}
