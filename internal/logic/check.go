package logic

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/filter"
	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// check is one pattern to verify.
type check struct {
	kind    string
	pattern string
}

// checkResult is the outcome of one check.
type checkResult struct {
	check

	count int
}

// RunCheck validates that every include/exclude pattern matches at least one file.
// Patterns are checked in parallel, bounded by cfg.Parallel.
//
//nolint:cyclop // parallel pipeline with printer goroutine
func RunCheck(cfg *config.Config, streams Streams) error {
	checks, err := loadChecks(cfg)
	if err != nil {
		return err
	}

	if len(checks) == 0 {
		return ErrNoPatterns
	}

	candidates, err := filter.Collect(cfg.Paths)
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}

	results := make(chan checkResult, len(checks))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	var failures int

	go func() {
		defer close(printed)

		for res := range results {
			if res.count == 0 {
				failures++

				fmt.Fprintf(streams.Err, "%s: %s - 0 files (ERROR)\n", res.kind, res.pattern)
			} else if !cfg.Quiet {
				fmt.Fprintf(streams.Err, "%s: %s - %d files\n", res.kind, res.pattern, res.count)
			}
		}
	}()

	opts := fnmatch.WithOptions(cfg.Options())

	for _, c := range checks {
		group.Go(func() error {
			pattern := fnmatch.New(c.pattern, opts)

			var count int

			for _, path := range candidates {
				if pattern.Match(path) {
					count++
				}
			}

			results <- checkResult{check: c, count: count}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if err != nil {
		return fmt.Errorf("checking patterns: %w", err)
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnmatchedPatterns, failures, len(checks))
	}

	return nil
}

// loadChecks merges CLI and file-based include/exclude patterns.
func loadChecks(cfg *config.Config) ([]check, error) {
	includes, err := filter.Patterns(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return nil, fmt.Errorf("loading include patterns: %w", err)
	}

	excludes, err := filter.Patterns(cfg.Exclude, cfg.ExcludeFrom)
	if err != nil {
		return nil, fmt.Errorf("loading exclude patterns: %w", err)
	}

	checks := make([]check, 0, len(includes)+len(excludes))

	// Normalize: strip leading "./" so patterns match cleaned paths.
	for _, p := range includes {
		checks = append(checks, check{kind: "include", pattern: strings.TrimPrefix(p, "./")})
	}

	for _, p := range excludes {
		checks = append(checks, check{kind: "exclude", pattern: strings.TrimPrefix(p, "./")})
	}

	return checks, nil
}
