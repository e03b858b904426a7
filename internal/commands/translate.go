package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gomatch/internal/config"
	"github.com/idelchi/gomatch/internal/logic"
)

// NewTranslateCommand creates a new cobra command for the translate subcommand.
func NewTranslateCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translate [flags] patterns...",
		Aliases: []string{"tr"},
		Short:   "Print the regular expressions equivalent to patterns",
		Long: `Print the regular expressions equivalent to patterns.
Translations always describe case-sensitive matching without globstar.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Patterns = args

			return cobraext.Validate(cfg, cfg)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunTranslate(cfg, streams)
		},
	}

	cmd.Flags().Bool("join", false, "Join all translations into one alternation")
	cmd.Flags().StringSliceP("test", "t", nil, "Names to run through the compiled translation")

	return cmd
}
