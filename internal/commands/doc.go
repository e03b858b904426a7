// Package commands provides the command-line interface for the gomatch tool.
//
// It implements commands for:
//   - matching names against a pattern
//   - translating patterns to regular expressions
//   - listing files filtered by include/exclude patterns
//   - checking that include/exclude patterns match files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gomatch/internal/config"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Paths
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Paths = []string{"."}
		} else {
			cfg.Paths = args
		}

		return cobraext.Validate(cfg, cfg)
	}
}
// addFilterFlags registers the include/exclude flags shared by list and check.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("include", "i", nil, "Include only paths matching these patterns")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Exclude paths matching these patterns")
	cmd.Flags().String("include-from", "", "Read include patterns from a JSONC or YAML file")
	cmd.Flags().String("exclude-from", "", "Read exclude patterns from a JSONC or YAML file")
}
