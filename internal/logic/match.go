package logic

import (
	"bufio"
	"fmt"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// RunMatch prints every name that matches the pattern, or every name that
// does not when cfg.Invert is set. Names are read from standard input, one
// per line, when none are given.
func RunMatch(cfg *config.Config, streams Streams) error {
	pattern := fnmatch.New(cfg.Pattern, fnmatch.WithOptions(cfg.Options()))

	names := cfg.Names

	if len(names) == 0 {
		scanner := bufio.NewScanner(streams.In)

		for scanner.Scan() {
			names = append(names, scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading names: %w", err)
		}
	}

	var matched int

	for _, name := range names {
		if pattern.Match(name) == cfg.Invert {
			continue
		}

		matched++

		if !cfg.Quiet {
			fmt.Fprintln(streams.Out, name)
		}
	}

	if matched == 0 {
		return fmt.Errorf("%w: %q", ErrNoMatch, cfg.Pattern)
	}

	return nil
}
