package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightForRank(t *testing.T) {
	tests := []struct {
		rank int
		want Highlight
	}{
		{1, HighlightContinentalTop},
		{4, HighlightContinentalTop},
		{5, HighlightContinentalMid},
		{6, HighlightContinentalMid},
		{7, HighlightContinentalLow},
		{8, HighlightContinentalLow},
		{9, HighlightNone},
		{10, HighlightNone},
		{17, HighlightNone},
		{18, HighlightRelegation},
		{19, HighlightRelegation},
		{20, HighlightRelegation},
		{21, HighlightNone}, // beyond a 20-team table
		{0, HighlightNone},  // ranks are 1-based
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HighlightForRank(tt.rank), "rank %d", tt.rank)
	}
}

func TestReducedIsSubsetOfFull(t *testing.T) {
	full := Table{Columns: FullColumns}
	for _, col := range ReducedColumns {
		assert.True(t, full.HasColumn(col), "full view is missing %s", col)
	}
	assert.Len(t, ReducedColumns, 10)
	assert.Len(t, FullColumns, 18)
}

func TestFullViewKeepsAsymmetricColumns(t *testing.T) {
	full := Table{Columns: FullColumns}
	assert.True(t, full.HasColumn(ColHomeGoalsFor))
	assert.False(t, full.HasColumn(ColHomeGoalsAgainst))
	assert.True(t, full.HasColumn(ColAwayGoalsAgainst))
	assert.False(t, full.HasColumn(ColAwayWin))
	assert.False(t, full.HasColumn(ColHomePlayed))
	assert.False(t, full.HasColumn(ColAwayPlayed))
}

func TestFlatRowValue(t *testing.T) {
	row := FlatRow{Rank: 3, TeamName: "Arsenal", TotalGoalsFor: 20, AwayGoalsAgainst: 7}

	v, ok := row.Value(ColTotalGoalsFor)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = row.Value(ColAwayGoalsAgainst)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = row.Value(ColTeamName)
	require.True(t, ok)
	assert.Equal(t, "Arsenal", v)

	_, ok = row.Value(Column("total_goals_for"))
	assert.False(t, ok, "underscore spelling is not a flattened column")
}

func TestProjectedRowMarshalJSONKeepsColumnOrder(t *testing.T) {
	table := Table{
		Columns: []Column{ColRank, ColTeamName, ColTotalGoalsFor, ColPoints},
		Rows:    []FlatRow{{Rank: 1, TeamName: "Arsenal", TotalGoalsFor: 20, Points: 25}},
	}

	data, err := json.Marshal(table.Records())
	require.NoError(t, err)
	assert.Equal(t, `[{"rank":1,"team_name":"Arsenal","total_goals.for":20,"points":25}]`, string(data))
}

func TestProjectedRowGet(t *testing.T) {
	rec := ProjectedRow{Columns: []Column{ColRank, ColPoints}, Values: []any{2, 40}}
	assert.Equal(t, 40, rec.Get(ColPoints))
	assert.Nil(t, rec.Get(ColTeamLogo))
}

func TestTableStrings(t *testing.T) {
	table := Table{
		Columns: []Column{ColRank, ColTeamName, ColPoints},
		Rows:    []FlatRow{{Rank: 7, TeamName: "Brighton", Points: 62}},
	}
	assert.Equal(t, []string{"7", "Brighton", "62"}, table.Strings(0))
	assert.Equal(t, []string{"rank", "team_name", "points"}, HeaderStrings(table.Columns))
}

func TestLeagueFromName(t *testing.T) {
	l, ok := LeagueFromName("la-liga")
	assert.True(t, ok)
	assert.Equal(t, LaLiga, l)

	l, ok = LeagueFromName("Premier League")
	assert.True(t, ok)
	assert.Equal(t, PremierLeague, l)

	_, ok = LeagueFromName("serie-a")
	assert.False(t, ok)
}

func TestColumnsForView(t *testing.T) {
	assert.Equal(t, ReducedColumns, ColumnsForView(ReducedView))
	assert.Equal(t, FullColumns, ColumnsForView(FullView))
}

func TestIsSupportedYear(t *testing.T) {
	assert.True(t, IsSupportedYear(2020))
	assert.False(t, IsSupportedYear(2019))
}

func TestLeagueDisplayName(t *testing.T) {
	assert.Equal(t, "Bundesliga", Bundesliga.DisplayName())
	assert.Equal(t, "ligue-1", League("ligue-1").DisplayName())
}
