package schema

// Custom string types for type safety.
type (
	// Column is the literal name of a flattened standings column.
	Column string

	// OutputMode represents the format of the output.
	OutputMode string

	// ViewMode selects one of the two column projections.
	ViewMode string

	// League identifies a league snapshot file.
	League string

	// Highlight is the display category derived from a rank.
	Highlight string

	// DatabaseBackend represents the database backend for archiving.
	DatabaseBackend string
)

// Flattened column names. Nested keys keep their original spelling, so the
// goals columns carry an embedded dot (e.g. "total_goals.for").
const (
	ColRank     Column = "rank"
	ColTeamID   Column = "team_id"
	ColTeamName Column = "team_name"
	ColTeamLogo Column = "team_logo"
	ColPoints   Column = "points"

	ColTotalPlayed       Column = "total_played"
	ColTotalWin          Column = "total_win"
	ColTotalDraw         Column = "total_draw"
	ColTotalLose         Column = "total_lose"
	ColTotalGoalsFor     Column = "total_goals.for"
	ColTotalGoalsAgainst Column = "total_goals.against"

	ColHomePlayed       Column = "home_played"
	ColHomeWin          Column = "home_win"
	ColHomeDraw         Column = "home_draw"
	ColHomeLose         Column = "home_lose"
	ColHomeGoalsFor     Column = "home_goals.for"
	ColHomeGoalsAgainst Column = "home_goals.against"

	ColAwayPlayed       Column = "away_played"
	ColAwayWin          Column = "away_win"
	ColAwayDraw         Column = "away_draw"
	ColAwayLose         Column = "away_lose"
	ColAwayGoalsFor     Column = "away_goals.for"
	ColAwayGoalsAgainst Column = "away_goals.against"
)

// ReducedColumns is the column order of the reduced view.
var ReducedColumns = []Column{
	ColRank, ColTeamLogo, ColTeamName,
	ColTotalPlayed, ColTotalWin, ColTotalDraw, ColTotalLose,
	ColTotalGoalsFor, ColTotalGoalsAgainst,
	ColPoints,
}

// FullColumns is the column order of the full view.
//
// The set is asymmetric: home_goals.against, away_win and the played
// counts are not part of it. Downstream consumers key on this exact list.
var FullColumns = []Column{
	ColRank, ColTeamLogo, ColTeamName,
	ColTotalPlayed, ColTotalWin, ColTotalDraw, ColTotalLose,
	ColTotalGoalsFor, ColTotalGoalsAgainst,
	ColHomeWin, ColHomeDraw, ColHomeLose, ColHomeGoalsFor,
	ColAwayDraw, ColAwayLose, ColAwayGoalsFor, ColAwayGoalsAgainst,
	ColPoints,
}

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All view modes supported.
const (
	ReducedView ViewMode = "reduced"
	FullView    ViewMode = "full" // default
)

// All leagues supported.
const (
	PremierLeague League = "premier-league" // default
	LaLiga        League = "la-liga"
	Bundesliga    League = "bundesliga"
)

// All highlight categories.
const (
	HighlightNone           Highlight = "none"
	HighlightContinentalTop Highlight = "continental-top"
	HighlightContinentalMid Highlight = "continental-mid"
	HighlightContinentalLow Highlight = "continental-low"
	HighlightRelegation     Highlight = "relegation"
)

// All archive backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DefaultYear is the season opened when nothing else is selected.
const DefaultYear = 2022

// SupportedYears lists the seasons with snapshots, newest first.
var SupportedYears = []int{2022, 2021, 2020}

// SupportedLeagues lists the leagues with snapshots in display order.
var SupportedLeagues = []League{PremierLeague, LaLiga, Bundesliga}

// LeagueNames maps each league to its display name.
var LeagueNames = map[League]string{
	PremierLeague: "Premier League",
	LaLiga:        "La Liga",
	Bundesliga:    "Bundesliga",
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidViewModes lists all valid view modes.
var ValidViewModes = map[ViewMode]struct{}{
	ReducedView: {},
	FullView:    {},
}

// ValidDatabaseBackends lists all valid archive backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// HighlightLabels maps each colored category to its legend text.
var HighlightLabels = map[Highlight]string{
	HighlightContinentalTop: "Champions League",
	HighlightContinentalMid: "Europa League",
	HighlightContinentalLow: "Conference League",
	HighlightRelegation:     "Relegation",
}

// LegendOrder is the order in which highlight categories appear in the legend.
var LegendOrder = []Highlight{
	HighlightContinentalTop,
	HighlightContinentalMid,
	HighlightContinentalLow,
	HighlightRelegation,
}
