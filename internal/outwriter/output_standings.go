package outwriter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/internal/parquet"
	"github.com/huangsam/standings/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStandingsResults outputs a projected table, dispatching based on the output format configured.
func WriteStandingsResults(ctx context.Context, table schema.Table, sel schema.Selection, cfg *contract.Config, logos CellRenderer) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsJSON(w, table)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsCSV(w, table)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertTable(table, sel, time.Now())
		if err := parquet.WriteStandingsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteStandingsTable(ctx, w, table, sel, cfg, logos)
		}, "Wrote table")
	}
	return nil
}

// WriteStandingsTable writes the selection header, the legend and the styled table.
func WriteStandingsTable(ctx context.Context, w io.Writer, table schema.Table, sel schema.Selection, cfg *contract.Config, logos CellRenderer) error {
	if err := writeSelectionHeader(w, sel, cfg.UseEmojis); err != nil {
		return err
	}
	if err := writeLegend(w, cfg.UseColors); err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(w)
	tbl.Header(schema.HeaderStrings(table.Columns))
	tbl.Configure(func(c *tablewriter.Config) {
		c.Header.Formatting.AutoFormat = tw.Off // keep the literal column names
		c.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, table.Len())
	for i := range table.Rows {
		data = append(data, styledRow(ctx, table, i, cfg.UseColors, logos))
	}

	if err := tbl.Bulk(data); err != nil {
		return err
	}
	if err := tbl.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d teams (%s view)\n", table.Len(), sel.View)
	return err
}

// styledRow renders one row of the text table. The rank cell carries the
// highlight color and points are always bold when colors are enabled.
func styledRow(ctx context.Context, table schema.Table, i int, useColors bool, logos CellRenderer) []string {
	row := table.Rows[i]
	cells := table.Strings(i)
	for j, col := range table.Columns {
		switch col {
		case schema.ColRank:
			if useColors {
				cells[j] = contract.GetColorRank(row.Rank)
			}
		case schema.ColPoints:
			if useColors {
				cells[j] = contract.GetColorPoints(row.Points)
			}
		case schema.ColTeamLogo:
			if logos != nil {
				cells[j] = logos.Cell(ctx, row.TeamLogo)
			}
		}
	}
	return cells
}

// writeSelectionHeader prints the league and season being shown.
func writeSelectionHeader(w io.Writer, sel schema.Selection, useEmojis bool) error {
	prefix := ""
	if useEmojis {
		prefix = "⚽ "
	}
	_, err := fmt.Fprintf(w, "%s%s %d\n", prefix, sel.League.DisplayName(), sel.Year)
	return err
}

// writeStandingsCSV writes the table with the literal column names as header.
func writeStandingsCSV(w io.Writer, table schema.Table) error {
	return writeCSVWithHeader(w, schema.HeaderStrings(table.Columns), func(cw *csv.Writer) error {
		for i := range table.Rows {
			if err := cw.Write(table.Strings(i)); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeStandingsJSON writes the table as an array of objects keyed by column name.
func writeStandingsJSON(w io.Writer, table schema.Table) error {
	return writeJSON(w, table.Records())
}
