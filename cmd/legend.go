package cmd

import (
	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/contract"
	"github.com/spf13/cobra"
)

// legendCmd prints what each rank color means.
var legendCmd = &cobra.Command{
	Use:     "legend",
	Short:   "Print the rank highlight legend.",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLegend(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot print legend", err)
		}
	},
}
