package fnmatch

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// CompileRegexp translates the patterns and compiles them into one expression
// that matches a name if any of the patterns matches all of it. The result
// agrees with case-sensitive, non-globstar Match.
//
// The returned expression is run by a backtracking engine; the atomic groups
// emitted by the translation keep it from going exponential.
func CompileRegexp(patterns ...string) (*regexp2.Regexp, error) {
	alternatives := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		alternatives = append(alternatives, translate(pattern, dotnet))
	}

	if len(alternatives) == 0 {
		alternatives = append(alternatives, "(?!)")
	}

	source := `\A(?:` + strings.Join(alternatives, "|") + ")"

	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", source, err)
	}

	return re, nil
}
