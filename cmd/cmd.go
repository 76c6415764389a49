// Package cmd defines the command-line interface for standings.
package cmd

import (
	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the archive subcommands to the parent archive command
	archiveCmd.AddCommand(archivePushCmd)
	archiveCmd.AddCommand(archiveStatusCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	archiveCmd.AddCommand(archiveClearCmd)
	archiveCmd.AddCommand(archiveMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding <year>/standings/<league>.json snapshots")
	rootCmd.PersistentFlags().IntP("year", "y", schema.DefaultYear, "Season start year: 2022 or 2021 or 2020")
	rootCmd.PersistentFlags().StringP("league", "l", string(schema.PremierLeague), "League: premier-league or la-liga or bundesliga")
	rootCmd.PersistentFlags().String("view", string(schema.FullView), "Column view: reduced or full")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("archive-backend", string(schema.SQLiteBackend), "Archive backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("archive-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored ranks and bold points in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in headers and status lines (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("logos", "yes", "Fetch team logos for the logo column (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("logo-timeout", contract.DefaultLogoTimeout.String(), "Deadline of a single logo fetch")
	rootCmd.PersistentFlags().Int("logo-size", contract.DefaultLogoSize, "Edge length in pixels of the resized logo")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of archiveMigrateCmd to Viper
	archiveMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(archiveMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding archive migrate flags", err)
	}
}
