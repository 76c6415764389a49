package cmd

import (
	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/contract"
	"github.com/spf13/cobra"
)

// showCmd prints one league table.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the league table of one season.",
	Long: `Load a saved league table and print it in the selected view.

The snapshot is read from <data-dir>/<year>/standings/<league>.json and
flattened so that nested counts become columns such as total_goals.for.

Views:
- reduced: rank, logo, team and the season totals
- full:    adds the home and away splits

In the text output the rank is colored by table position and points are bold:
- 1-4:   Champions League
- 5-6:   Europa League
- 7-8:   Conference League
- 18-20: Relegation

Examples:
  # Current default selection
  standings show

  # Reduced view of another season and league
  standings show --year 2021 --league la-liga --view reduced

  # Skip logo downloads
  standings show --logos no

  # Export for spreadsheets
  standings show --output csv --output-file standings.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShow(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show standings", err)
		}
	},
}
