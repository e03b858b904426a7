package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
// Every flag can also be set through a GOMATCH_<FLAG> environment variable.
func NewRootCommand(cfg *config.Config, streams logic.Streams, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gomatch [flags] command [flags]"
	root.Short = "Shell-style filename pattern matching"
	root.Long = `Match filenames against shell glob patterns (*, ?, [...] and optionally **).
Backslash is always an ordinary character.
Provides commands for matching names, translating patterns to regular expressions,
and listing or checking files of a tree against include/exclude patterns.`

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("case-sensitive", "c", false, "Match case-sensitively")
	root.PersistentFlags().BoolP("globstar", "g", false, "Enable ** and keep * within one path component")
	root.PersistentFlags().
		IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")

	root.AddCommand(
		NewMatchCommand(cfg, streams),
		NewTranslateCommand(cfg, streams),
		NewListCommand(cfg, streams),
		NewCheckCommand(cfg, streams),
	)

	return root
}
