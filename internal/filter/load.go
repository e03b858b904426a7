package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a pattern file and returns the parsed glob patterns.
// Files ending in .yml or .yaml hold a YAML list, anything else a JSONC array.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &patterns)
	default:
		err = json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

// Patterns merges command-line patterns with the ones from an optional file.
func Patterns(patterns []string, from string) ([]string, error) {
	merged := append([]string{}, patterns...)

	if from == "" {
		return merged, nil
	}

	loaded, err := LoadPatterns(from)
	if err != nil {
		return nil, err
	}

	return append(merged, loaded...), nil
}
