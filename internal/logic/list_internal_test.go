package logic

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("12345"), 0o600); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing.txt")

	var errOut bytes.Buffer

	size, unreadable := measure([]string{present, missing}, &errOut)
	if size != 5 || unreadable != 1 {
		t.Errorf("measure() = (%d, %d), want (5, 1)", size, unreadable)
	}

	if !strings.Contains(errOut.String(), "warning:") || !strings.Contains(errOut.String(), "missing.txt") {
		t.Errorf("measure() warnings = %q, want one naming missing.txt", errOut.String())
	}

	var out bytes.Buffer

	stats{listed: 2, unreadable: unreadable, size: size}.print(&out)

	if !strings.Contains(out.String(), "Unreadable: 1") {
		t.Errorf("stats %q lack the unreadable count", out.String())
	}
}
