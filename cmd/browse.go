package cmd

import (
	"os"

	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/contract"
	"github.com/spf13/cobra"
)

// browseCmd runs the interactive viewer.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse league tables interactively.",
	Long: `Open the interactive viewer on the configured selection.

Commands read from standard input, one per line:
  year <2022|2021|2020>   switch season and reload
  league <id or name>     switch league and reload
  view <reduced|full>     switch the column view without reloading
  toggle                  flip between reduced and full
  help                    list commands
  quit                    leave the viewer

Examples:
  # Start on the defaults
  standings browse

  # Start on the reduced Bundesliga table of 2020
  standings browse --year 2020 --league bundesliga --view reduced`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBrowse(rootCtx, cfg, os.Stdin, os.Stdout); err != nil {
			contract.LogFatal("Cannot run viewer", err)
		}
	},
}
