package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Value returns the value of a flattened column for this row.
// The boolean is false for names that are not flattened columns.
func (r FlatRow) Value(col Column) (any, bool) {
	switch col {
	case ColRank:
		return r.Rank, true
	case ColTeamID:
		return r.TeamID, true
	case ColTeamName:
		return r.TeamName, true
	case ColTeamLogo:
		return r.TeamLogo, true
	case ColPoints:
		return r.Points, true
	case ColTotalPlayed:
		return r.TotalPlayed, true
	case ColTotalWin:
		return r.TotalWin, true
	case ColTotalDraw:
		return r.TotalDraw, true
	case ColTotalLose:
		return r.TotalLose, true
	case ColTotalGoalsFor:
		return r.TotalGoalsFor, true
	case ColTotalGoalsAgainst:
		return r.TotalGoalsAgainst, true
	case ColHomePlayed:
		return r.HomePlayed, true
	case ColHomeWin:
		return r.HomeWin, true
	case ColHomeDraw:
		return r.HomeDraw, true
	case ColHomeLose:
		return r.HomeLose, true
	case ColHomeGoalsFor:
		return r.HomeGoalsFor, true
	case ColHomeGoalsAgainst:
		return r.HomeGoalsAgainst, true
	case ColAwayPlayed:
		return r.AwayPlayed, true
	case ColAwayWin:
		return r.AwayWin, true
	case ColAwayDraw:
		return r.AwayDraw, true
	case ColAwayLose:
		return r.AwayLose, true
	case ColAwayGoalsFor:
		return r.AwayGoalsFor, true
	case ColAwayGoalsAgainst:
		return r.AwayGoalsAgainst, true
	default:
		return nil, false
	}
}

// Cell returns the value at the given row index and column.
func (t Table) Cell(row int, col Column) any {
	v, _ := t.Rows[row].Value(col)
	return v
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the projection includes col.
func (t Table) HasColumn(col Column) bool {
	return slices.Contains(t.Columns, col)
}

// Strings renders a row as one string per projected column.
func (t Table) Strings(row int) []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = FormatValue(t.Cell(row, col))
	}
	return out
}

// Records returns the rows as ordered column/value records.
func (t Table) Records() []ProjectedRow {
	out := make([]ProjectedRow, len(t.Rows))
	for i := range t.Rows {
		values := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			values[j] = t.Cell(i, col)
		}
		out[i] = ProjectedRow{Columns: t.Columns, Values: values}
	}
	return out
}

// HeaderStrings returns the column names as plain strings.
func HeaderStrings(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}

// ProjectedRow is one row of a projection with its column order preserved.
type ProjectedRow struct {
	Columns []Column
	Values  []any
}

// Get returns the value of col, or nil when the row does not carry it.
func (p ProjectedRow) Get(col Column) any {
	for i, c := range p.Columns {
		if c == col {
			return p.Values[i]
		}
	}
	return nil
}

// MarshalJSON encodes the row as an object whose keys follow column order.
func (p ProjectedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range p.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(col))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Values[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FormatValue renders a cell value for text and CSV output.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

// HighlightForRank classifies a rank into its display category.
func HighlightForRank(rank int) Highlight {
	switch {
	case rank >= 1 && rank <= 4:
		return HighlightContinentalTop
	case rank == 5 || rank == 6:
		return HighlightContinentalMid
	case rank == 7 || rank == 8:
		return HighlightContinentalLow
	case rank >= 18 && rank <= 20:
		return HighlightRelegation
	default:
		return HighlightNone
	}
}

// ColumnsForView returns the projection for a view mode.
func ColumnsForView(view ViewMode) []Column {
	if view == ReducedView {
		return ReducedColumns
	}
	return FullColumns
}

// LeagueFromName resolves either a league id or its display name.
func LeagueFromName(name string) (League, bool) {
	for _, l := range SupportedLeagues {
		if strings.EqualFold(string(l), name) || strings.EqualFold(LeagueNames[l], name) {
			return l, true
		}
	}
	return "", false
}

// IsSupportedYear reports whether a snapshot year is offered.
func IsSupportedYear(year int) bool {
	return slices.Contains(SupportedYears, year)
}

// DisplayName returns the human name of a league, falling back to its id.
func (l League) DisplayName() string {
	if name, ok := LeagueNames[l]; ok {
		return name
	}
	return string(l)
}
