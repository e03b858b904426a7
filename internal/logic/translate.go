package logic

import (
	"fmt"
	"strings"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/pkg/fnmatch"
)

// RunTranslate prints the regular expression of every pattern, one per line
// or joined into a single alternation. Names given with cfg.Test are run
// through the compiled expression and the verdicts printed.
func RunTranslate(cfg *config.Config, streams Streams) error {
	translations := make([]string, len(cfg.Patterns))

	for i, p := range cfg.Patterns {
		translations[i] = fnmatch.Translate(p)
	}

	if cfg.Join {
		fmt.Fprintln(streams.Out, strings.Join(translations, "|"))
	} else {
		for _, t := range translations {
			fmt.Fprintln(streams.Out, t)
		}
	}

	if len(cfg.Test) == 0 {
		return nil
	}

	re, err := fnmatch.CompileRegexp(cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("compiling translation: %w", err)
	}

	for _, name := range cfg.Test {
		ok, err := re.MatchString(name)
		if err != nil {
			return fmt.Errorf("testing %q: %w", name, err)
		}

		fmt.Fprintf(streams.Out, "%q: %t\n", name, ok)
	}

	return nil
}
