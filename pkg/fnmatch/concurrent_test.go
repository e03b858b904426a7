package fnmatch_test

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gomatch/pkg/fnmatch"
)

func TestConcurrentMatch(t *testing.T) {
	t.Parallel()

	pattern := fnmatch.New("src/**/*_test.go", fnmatch.WithGlobstar())

	group := errgroup.Group{}
	group.SetLimit(8)

	for i := range 64 {
		group.Go(func() error {
			match := fmt.Sprintf("src/pkg%d/sub/file%d_test.go", i, i)
			miss := fmt.Sprintf("src/pkg%d/file%d.go", i, i)

			if !pattern.Match(match) {
				return fmt.Errorf("%q did not match", match)
			}

			if pattern.Match(miss) {
				return fmt.Errorf("%q matched", miss)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		t.Error(err)
	}
}
