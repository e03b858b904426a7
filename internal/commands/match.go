package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/logic"
)

// NewMatchCommand creates a new cobra command for the match subcommand.
func NewMatchCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [flags] pattern [names...]",
		Short: "Print the names matching a pattern",
		Long: `Print the names matching a pattern.
Names are read from standard input, one per line, when none are given.
Exits with an error when nothing matched.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Names = args[1:]

			return cobraext.Validate(cfg, cfg)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunMatch(cfg, streams)
		},
	}

	cmd.Flags().BoolP("invert", "v", false, "Print the names that do not match")

	return cmd
}
