package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/filter"
)

// RunList prints the files below cfg.Paths that pass the include/exclude filter.
func RunList(cfg *config.Config, streams Streams) error {
	start := time.Now()

	flt, err := newFilter(cfg)
	if err != nil {
		return err
	}

	files, scanned, err := filter.Resolve(cfg.Paths, flt)
	if err != nil {
		return fmt.Errorf("filtering files: %w", err)
	}

	st := stats{scanned: scanned, excluded: scanned - len(files), listed: len(files)}

	if !cfg.Quiet {
		for _, file := range files {
			fmt.Fprintln(streams.Out, file)
		}
	}

	if cfg.Stats {
		st.size, st.unreadable = measure(files, streams.Err)
		st.duration = time.Since(start)
		st.print(streams.Err)
	}

	return nil
}

// measure sums the sizes of files. Files that cannot be stat'ed are reported
// on w and counted instead.
func measure(files []string, w io.Writer) (size int64, unreadable int) {
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)

			unreadable++

			continue
		}

		size += info.Size()
	}

	return size, unreadable
}

// newFilter merges command-line and file-based patterns into a filter.
func newFilter(cfg *config.Config) (*filter.Filter, error) {
	includes, err := filter.Patterns(cfg.Include, cfg.IncludeFrom)
	if err != nil {
		return nil, fmt.Errorf("loading include patterns: %w", err)
	}

	excludes, err := filter.Patterns(cfg.Exclude, cfg.ExcludeFrom)
	if err != nil {
		return nil, fmt.Errorf("loading exclude patterns: %w", err)
	}

	return filter.New(includes, excludes, cfg.HasIncludes(), cfg.Options()), nil
}
