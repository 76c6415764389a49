// Package core has core logic for loading, flattening and projecting standings snapshots.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/standings/internal/archive"
	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/internal/outwriter"
	"github.com/huangsam/standings/internal/parquet"
	"github.com/huangsam/standings/internal/viewer"
	"github.com/huangsam/standings/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// SelectView returns the table of the requested view.
func SelectView(reduced, full schema.Table, view schema.ViewMode) schema.Table {
	if view == schema.ReducedView {
		return reduced
	}
	return full
}

// GetStandingsTable loads the configured selection and returns the table of its view.
func GetStandingsTable(loader contract.SnapshotLoader, sel schema.Selection) (schema.Table, error) {
	reduced, full, err := loader.Load(sel.Year, sel.League)
	if err != nil {
		return schema.Table{}, err
	}
	return SelectView(reduced, full, sel.View), nil
}

// ExecuteShow loads one snapshot and prints it in the configured output format.
// It serves as the main entry point for the 'show' command.
func ExecuteShow(ctx context.Context, cfg *contract.Config) error {
	table, err := GetStandingsTable(NewDirLoader(cfg.DataDir), cfg.Selection())
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStandings(ctx, table, cfg.Selection(), cfg)
}

// ExecuteLegend prints the highlight legend.
func ExecuteLegend(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteLegend(cfg)
}

// ExecuteBrowse runs the interactive viewer, reading commands from in and rendering to out.
func ExecuteBrowse(ctx context.Context, cfg *contract.Config, in io.Reader, out io.Writer) error {
	v := viewer.New(NewDirLoader(cfg.DataDir), cfg, out)
	return v.Run(ctx, in)
}

// ExecuteArchivePush loads one snapshot and replaces its rows in the archive.
func ExecuteArchivePush(ctx context.Context, cfg *contract.Config, store contract.ArchiveStore) error {
	rows, err := NewDirLoader(cfg.DataDir).LoadRows(cfg.Year, cfg.League)
	if err != nil {
		return err
	}
	if cfg.ArchiveBackend == schema.NoneBackend {
		if !shouldSuppressHeader(ctx) {
			_, _ = fmt.Fprintf(os.Stderr, "💾 Archiving is disabled, %d rows of %s %d were not stored\n",
				len(rows), cfg.League.DisplayName(), cfg.Year)
		}
		return nil
	}
	if err := store.PushSnapshot(cfg.Year, cfg.League, rows, getPushTime(ctx)); err != nil {
		return fmt.Errorf("archive push failed: %w", err)
	}
	if !shouldSuppressHeader(ctx) {
		_, _ = fmt.Fprintf(os.Stderr, "💾 Archived %d rows of %s %d to %s\n",
			len(rows), cfg.League.DisplayName(), cfg.Year, cfg.ArchiveBackend)
	}
	return nil
}

// ExecuteArchiveStatus prints status information about the archive.
func ExecuteArchiveStatus(_ context.Context, store contract.ArchiveStore, out io.Writer) error {
	status, err := store.GetStatus()
	if err != nil {
		return err
	}
	archive.PrintArchiveStatus(out, status)
	return nil
}

// ExecuteArchiveClear removes every archived row.
func ExecuteArchiveClear(ctx context.Context, cfg *contract.Config, store contract.ArchiveStore) error {
	if err := store.Clear(); err != nil {
		return err
	}
	if shouldSuppressHeader(ctx) {
		return nil
	}
	if cfg.ArchiveBackend == schema.NoneBackend {
		_, _ = fmt.Fprintln(os.Stderr, "🧹 Archiving is disabled, nothing to clear")
		return nil
	}
	_, _ = fmt.Fprintf(os.Stderr, "🧹 Cleared archive on %s\n", cfg.ArchiveBackend)
	return nil
}

// ExecuteArchiveExport writes the archived rows of the configured selection to a Parquet file.
func ExecuteArchiveExport(ctx context.Context, cfg *contract.Config, store contract.ArchiveStore) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("archive export requires --output-file")
	}
	rows, err := store.GetRows(cfg.Year, cfg.League)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no archived rows for %s %d", cfg.League.DisplayName(), cfg.Year)
	}

	sel := cfg.Selection()
	table := Project(rows, schema.ColumnsForView(sel.View))
	if err := parquet.WriteStandingsParquet(parquet.ConvertTable(table, sel, time.Now()), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	if !shouldSuppressHeader(ctx) {
		_, _ = fmt.Fprintf(os.Stderr, "💾 Exported %d archived rows to %s\n", len(rows), cfg.OutputFile)
	}
	return nil
}
