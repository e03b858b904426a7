package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] [paths...]",
		Short:   "Validate that include/exclude patterns match files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg, streams)
		},
	}

	addFilterFlags(cmd)

	return cmd
}
