package cmd

import (
	"os"

	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/archive"
	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// archiveSetup loads minimal configuration needed for archive operations.
// This is used by commands that need the archive without a full selection.
func archiveSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get archive-related config values
	backendStr := viper.GetString("archive-backend")
	connStr := viper.GetString("archive-db-connect")

	backend, err := contract.ParseArchiveBackend(backendStr)
	if err != nil {
		return err
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr
	return nil
}

// archiveSetupWrapper wraps archiveSetup to provide PreRunE for archive commands.
func archiveSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveSetup()
}

// openArchive opens the configured archive store or exits.
func openArchive() contract.ArchiveStore {
	store, err := archive.NewArchiveStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
	if err != nil {
		contract.LogFatal("Failed to open archive", err)
	}
	return store
}

// closeArchive closes the store and reports failures as warnings.
func closeArchive(store contract.ArchiveStore) {
	if err := store.Close(); err != nil {
		contract.LogWarn("Failed to close archive", err)
	}
}

// archiveCmd focused on archive data management.
//
// Note: status, clear and migrate use minimal initialization (archiveSetup)
// instead of the full sharedSetup, since they do not need a selection.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Keep flattened league tables in a database",
	Long: `Store flattened league tables in a SQL database for later queries.

Each push replaces the rows of one (year, league) snapshot, so pushing the
same selection twice keeps a single copy.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  push    - Store the rows of the selected snapshot
  status  - Show archive statistics
  export  - Export archived rows to Parquet
  clear   - Remove all archived rows
  migrate - Run database schema migrations

Examples:
  # Archive two seasons
  standings archive push --year 2022
  standings archive push --year 2021 --league la-liga

  # Check what is stored
  standings archive status`,
}

// archivePushCmd stores the selected snapshot.
var archivePushCmd = &cobra.Command{
	Use:   "push",
	Short: "Store the flattened rows of the selected snapshot",
	Long: `Load the selected snapshot and replace its rows in the archive.

Every flattened column is stored, including the ones that neither view shows.

Examples:
  # Push the default selection to the local SQLite archive
  standings archive push

  # Push to PostgreSQL
  STANDINGS_ARCHIVE_DB_CONNECT="host=localhost dbname=standings user=me" \
    standings archive push --archive-backend postgresql --league bundesliga`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchive()
		defer closeArchive(store)
		if err := core.ExecuteArchivePush(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Failed to push to archive", err)
		}
	},
}

// archiveStatusCmd shows archive status.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show the backend, connection state, number of stored rows, the archived
snapshots and the time of the last push.

Examples:
  # Check the local archive
  standings archive status`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchive()
		defer closeArchive(store)
		if err := core.ExecuteArchiveStatus(rootCtx, store, os.Stdout); err != nil {
			contract.LogFatal("Failed to get archive status", err)
		}
	},
}

// archiveExportCmd exports archived rows to a Parquet file.
var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived rows of the selection to Parquet",
	Long: `Read the archived rows of the selected snapshot and write them to Parquet
in the selected view.

Requires: --output-file parameter

Examples:
  # Export the archived Premier League 2022 table
  standings archive export --output-file pl-2022.parquet

  # Query it with DuckDB
  duckdb -c "SELECT team_name, points FROM read_parquet('pl-2022.parquet')"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchive()
		defer closeArchive(store)
		if err := core.ExecuteArchiveExport(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Failed to export archive", err)
		}
	},
}

// archiveClearCmd clears the archive.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived rows",
	Long: `Delete every archived row from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  standings archive export --output-file backup.parquet
  standings archive clear`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchive()
		defer closeArchive(store)
		if err := core.ExecuteArchiveClear(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Failed to clear archive", err)
		}
	},
}

// archiveMigrateCmd runs database migrations for the archive store.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the archive store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  standings archive migrate

  # Rollback to initial state
  standings archive migrate --target-version 0`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := archiveSetupWrapper(cmd, args); err != nil {
			return err
		}
		// For SQLite backend with empty connection string, use default path
		if cfg.ArchiveBackend == schema.SQLiteBackend && cfg.ArchiveDBConnect == "" {
			cfg.ArchiveDBConnect = contract.GetArchiveDBFilePath()
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := archive.MigrateArchive(os.Stdout, cfg.ArchiveBackend, cfg.ArchiveDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
