// Package parquet provides data structures and functions for exporting standings
// tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/standings/schema"
	"github.com/parquet-go/parquet-go"
)

// StandingsRow represents one team of a projected standings table.
// Column names match the flattened column names, dots included.
// Columns that only the full view carries are optional.
type StandingsRow struct {
	// Year and League identify the snapshot the row was loaded from
	Year   int32  `parquet:"year,snappy"`
	League string `parquet:"league,snappy"`

	// View is the projection the row was exported from (reduced or full)
	View string `parquet:"view,snappy"`

	// ExportedAt is when the file was written (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`

	Rank     int32  `parquet:"rank,snappy"`
	TeamLogo string `parquet:"team_logo,snappy"`
	TeamName string `parquet:"team_name,snappy"`
	Points   int32  `parquet:"points,snappy"`

	TotalPlayed       int32 `parquet:"total_played,snappy"`
	TotalWin          int32 `parquet:"total_win,snappy"`
	TotalDraw         int32 `parquet:"total_draw,snappy"`
	TotalLose         int32 `parquet:"total_lose,snappy"`
	TotalGoalsFor     int32 `parquet:"total_goals.for,snappy"`
	TotalGoalsAgainst int32 `parquet:"total_goals.against,snappy"`

	HomeWin      *int32 `parquet:"home_win,optional,snappy"`
	HomeDraw     *int32 `parquet:"home_draw,optional,snappy"`
	HomeLose     *int32 `parquet:"home_lose,optional,snappy"`
	HomeGoalsFor *int32 `parquet:"home_goals.for,optional,snappy"`

	AwayDraw         *int32 `parquet:"away_draw,optional,snappy"`
	AwayLose         *int32 `parquet:"away_lose,optional,snappy"`
	AwayGoalsFor     *int32 `parquet:"away_goals.for,optional,snappy"`
	AwayGoalsAgainst *int32 `parquet:"away_goals.against,optional,snappy"`
}

// WriteStandingsParquet writes a slice of StandingsRow structs to a Parquet file.
func WriteStandingsParquet(data []StandingsRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the StandingsRow struct tags
	writer := parquet.NewGenericWriter[StandingsRow](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// ConvertTable converts a projected table into Parquet rows.
// Optional columns are set only when the projection includes them.
func ConvertTable(table schema.Table, sel schema.Selection, exportedAt time.Time) []StandingsRow {
	out := make([]StandingsRow, len(table.Rows))
	for i, r := range table.Rows {
		row := StandingsRow{
			Year:              int32(sel.Year),
			League:            string(sel.League),
			View:              string(sel.View),
			ExportedAt:        exportedAt,
			Rank:              int32(r.Rank),
			TeamLogo:          r.TeamLogo,
			TeamName:          r.TeamName,
			Points:            int32(r.Points),
			TotalPlayed:       int32(r.TotalPlayed),
			TotalWin:          int32(r.TotalWin),
			TotalDraw:         int32(r.TotalDraw),
			TotalLose:         int32(r.TotalLose),
			TotalGoalsFor:     int32(r.TotalGoalsFor),
			TotalGoalsAgainst: int32(r.TotalGoalsAgainst),
		}

		opt := func(col schema.Column, v int) *int32 {
			if !table.HasColumn(col) {
				return nil
			}
			n := int32(v)
			return &n
		}
		row.HomeWin = opt(schema.ColHomeWin, r.HomeWin)
		row.HomeDraw = opt(schema.ColHomeDraw, r.HomeDraw)
		row.HomeLose = opt(schema.ColHomeLose, r.HomeLose)
		row.HomeGoalsFor = opt(schema.ColHomeGoalsFor, r.HomeGoalsFor)
		row.AwayDraw = opt(schema.ColAwayDraw, r.AwayDraw)
		row.AwayLose = opt(schema.ColAwayLose, r.AwayLose)
		row.AwayGoalsFor = opt(schema.ColAwayGoalsFor, r.AwayGoalsFor)
		row.AwayGoalsAgainst = opt(schema.ColAwayGoalsAgainst, r.AwayGoalsAgainst)

		out[i] = row
	}
	return out
}
