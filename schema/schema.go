// Package schema has configs, models and global variables for all parts of standings.
package schema

// StandingsRecord is one team entry as stored in a raw snapshot.
// Required fields are pointers so that a missing key can be told apart from a zero.
type StandingsRecord struct {
	Rank        *int        `json:"rank"`
	Team        *TeamInfo   `json:"team"`
	Points      *int        `json:"points"`
	GoalsDiff   int         `json:"goalsDiff"`
	Group       string      `json:"group"`
	Form        string      `json:"form"`
	Description string      `json:"description"`
	Total       *SplitStats `json:"all"`
	Home        *SplitStats `json:"home"`
	Away        *SplitStats `json:"away"`
	// status and update are present in snapshots but carry nothing we display.
}

// TeamInfo is the nested team object of a record.
type TeamInfo struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
	Logo *string `json:"logo"`
}

// SplitStats holds the match counts for one split (all, home or away).
type SplitStats struct {
	Played *int       `json:"played"`
	Win    *int       `json:"win"`
	Draw   *int       `json:"draw"`
	Lose   *int       `json:"lose"`
	Goals  *GoalStats `json:"goals"`
}

// GoalStats holds goals scored and conceded.
type GoalStats struct {
	For     *int `json:"for"`
	Against *int `json:"against"`
}

// FlatRow is a StandingsRecord with every nested object flattened into
// top-level fields. One FlatRow per team; order follows the snapshot.
type FlatRow struct {
	Rank     int
	TeamID   int
	TeamName string
	TeamLogo string
	Points   int

	TotalPlayed       int
	TotalWin          int
	TotalDraw         int
	TotalLose         int
	TotalGoalsFor     int
	TotalGoalsAgainst int

	HomePlayed       int
	HomeWin          int
	HomeDraw         int
	HomeLose         int
	HomeGoalsFor     int
	HomeGoalsAgainst int

	AwayPlayed       int
	AwayWin          int
	AwayDraw         int
	AwayLose         int
	AwayGoalsFor     int
	AwayGoalsAgainst int
}

// Table is a projection of flattened rows onto a fixed column list.
type Table struct {
	Columns []Column
	Rows    []FlatRow
}

// Selection identifies what the user is looking at.
type Selection struct {
	Year   int      `json:"year"`
	League League   `json:"league"`
	View   ViewMode `json:"view"`
}

// SnapshotSelection names a single (year, league) snapshot.
type SnapshotSelection struct {
	Year   int    `json:"year"`
	League League `json:"league"`
}

// ArchiveStatus describes the archive store.
type ArchiveStatus struct {
	Backend   string              `json:"backend"`
	Connected bool                `json:"connected"`
	TotalRows int64               `json:"total_rows"`
	Snapshots []SnapshotSelection `json:"snapshots"`
	LastPush  string              `json:"last_push"`
}
