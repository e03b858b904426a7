// Package filter selects files based on include/exclude glob patterns.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// ErrNoFiles is returned by Resolve when nothing passed the filter.
var ErrNoFiles = errors.New("no files matched the provided patterns")

// Filter selects files based on include/exclude patterns.
// Empty includes means "match all". Excludes always win.
type Filter struct {
	includes    *fnmatch.Set
	excludes    *fnmatch.Set
	hasIncludes bool
}

// New compiles include/exclude patterns into a reusable filter.
// hasIncludes indicates whether include filtering was requested,
// regardless of whether the pattern list is empty.
func New(includes, excludes []string, hasIncludes bool, opts fnmatch.Options) *Filter {
	return &Filter{
		includes:    fnmatch.NewSet(normalizePatterns(includes), fnmatch.WithOptions(opts)),
		excludes:    fnmatch.NewSet(normalizePatterns(excludes), fnmatch.WithOptions(opts)),
		hasIncludes: hasIncludes,
	}
}

// Match returns true if the slash-separated relative path should be included.
func (f *Filter) Match(path string) bool {
	included := !f.hasIncludes || f.includes.MatchAny(path)
	excluded := f.excludes.MatchAny(path)

	return included && !excluded
}

// normalizePatterns strips leading "./" from patterns so they match cleaned paths.
func normalizePatterns(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve takes positional args (files/directories) and a filter.
// Files are added directly (bypassing filtering). Directories are walked and filtered.
// Returns matched files and total candidates scanned.
func Resolve(args []string, flt *Filter) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			// Explicit file: bypass filtering, add directly.
			scanned++

			if _, ok := seen[arg]; ok {
				continue
			}

			seen[arg] = struct{}{}
			files = append(files, arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// Collect walks all args and returns every file path found, slash-separated
// and without filtering.
func Collect(args []string) ([]string, error) {
	files, _, err := Resolve(args, New(nil, nil, false, fnmatch.Options{}))
	if err != nil && !errors.Is(err, ErrNoFiles) {
		return nil, err
	}

	for i, f := range files {
		files[i] = filepath.ToSlash(f)
	}

	return files, nil
}

// walkDir walks root recursively, returning files that pass the filter.
// Paths are relative to cwd (e.g. "src/main.go" when root is ".").
func walkDir(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		// Use forward slashes for pattern matching consistency.
		clean := filepath.ToSlash(filepath.Clean(path))

		if !flt.Match(clean) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
