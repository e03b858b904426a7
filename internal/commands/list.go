package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/logic"
)

// NewListCommand creates a new cobra command for the list subcommand.
func NewListCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [flags] [paths...]",
		Aliases: []string{"ls"},
		Short:   "List files passing include/exclude patterns",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunList(cfg, streams)
		},
	}

	addFilterFlags(cmd)

	cmd.Flags().Bool("stats", false, "Print statistics after listing")

	return cmd
}
