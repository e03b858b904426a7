// Package logic implements the gomatch commands.
package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	// ErrNoMatch is returned when no name matched the pattern.
	ErrNoMatch = errors.New("no names matched")
	// ErrNoPatterns is returned by RunCheck when there is nothing to check.
	ErrNoPatterns = errors.New("no include or exclude patterns to check")
	// ErrUnmatchedPatterns is returned by RunCheck when a pattern matched no file.
	ErrUnmatchedPatterns = errors.New("patterns matched no files")
)

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process' standard streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// stats summarizes a listing.
type stats struct {
	scanned    int
	excluded   int
	listed     int
	unreadable int
	size       int64
	duration   time.Duration
}

func (s stats) print(w io.Writer) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", s.scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", s.excluded)
	fmt.Fprintf(w, "  Listed:    %d\n", s.listed)

	if s.unreadable > 0 {
		fmt.Fprintf(w, "  Unreadable: %d\n", s.unreadable)
	}

	//nolint:gosec // size is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.size))))
	fmt.Fprintf(w, "  Duration:  %s\n", s.duration.Round(time.Millisecond))
}
