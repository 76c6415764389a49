package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
)

// Loader reads standings snapshots from a directory tree laid out as
// <year>/standings/<league>.json.
type Loader struct {
	fsys fs.FS
}

var _ contract.SnapshotLoader = &Loader{} // Compile-time check

// NewLoader creates a Loader over the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates a Loader rooted at a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// SnapshotPath returns the slash-separated location of a snapshot relative to the data directory.
func SnapshotPath(year int, league schema.League) string {
	return path.Join(strconv.Itoa(year), "standings", string(league)+".json")
}

// Load reads one snapshot and returns its reduced and full projections.
// Both tables keep the row order of the snapshot. On error neither table is populated.
func (l *Loader) Load(year int, league schema.League) (reduced, full schema.Table, err error) {
	rows, err := l.LoadRows(year, league)
	if err != nil {
		return schema.Table{}, schema.Table{}, err
	}
	return Project(rows, schema.ReducedColumns), Project(rows, schema.FullColumns), nil
}

// LoadRows reads one snapshot and returns every flattened row.
func (l *Loader) LoadRows(year int, league schema.League) ([]schema.FlatRow, error) {
	p := SnapshotPath(year, league)

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &LoadError{Kind: ErrNotFound, Path: p, Err: err}
	}

	records, err := ParseSnapshot(data)
	if err != nil {
		return nil, &LoadError{Kind: ErrParse, Path: p, Err: err}
	}

	rows, err := Flatten(records)
	if err != nil {
		return nil, &LoadError{Kind: ErrParse, Path: p, Err: err}
	}
	return rows, nil
}

// ParseSnapshot decodes a snapshot document. The top level must be a JSON array.
func ParseSnapshot(data []byte) ([]schema.StandingsRecord, error) {
	var records []schema.StandingsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errors.New("snapshot is not an array of records")
	}
	if err := checkRecordKeys(data); err != nil {
		return nil, err
	}
	return records, nil
}

// keySpec names the keys an object must carry, with the keys required of
// each nested object. A nil value marks a scalar.
type keySpec map[string]keySpec

var (
	goalsKeys  = keySpec{"for": nil, "against": nil}
	splitKeys  = keySpec{"played": nil, "win": nil, "draw": nil, "lose": nil, "goals": goalsKeys}
	recordKeys = keySpec{
		"rank":   nil,
		"points": nil,
		"team":   {"name": nil, "logo": nil},
		"all":    splitKeys,
		"home":   splitKeys,
		"away":   splitKeys,
	}
)

// checkRecordKeys requires every record to spell its keys exactly.
// encoding/json matches field names case-insensitively, so "ALL" or "Team"
// would otherwise pass for "all" and "team".
func checkRecordKeys(data []byte) error {
	var objs []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objs); err != nil {
		return err
	}
	for i, obj := range objs {
		var missing []string
		if err := recordKeys.collectMissing("", obj, &missing); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("record %d: missing %s", i, strings.Join(missing, ", "))
		}
	}
	return nil
}

func (spec keySpec) collectMissing(prefix string, obj map[string]json.RawMessage, missing *[]string) error {
	for key, nested := range spec {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		raw, ok := obj[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			*missing = append(*missing, name)
			continue
		}
		if nested == nil {
			continue
		}
		var child map[string]json.RawMessage
		if err := json.Unmarshal(raw, &child); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := nested.collectMissing(name, child, missing); err != nil {
			return err
		}
	}
	return nil
}

// Flatten turns nested records into flat rows, one per record, in input order.
// Ranks must be unique and run from 1 to the number of records.
func Flatten(records []schema.StandingsRecord) ([]schema.FlatRow, error) {
	rows := make([]schema.FlatRow, 0, len(records))
	seen := make(map[int]struct{}, len(records))

	for i, rec := range records {
		row, err := flattenRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[row.Rank]; dup {
			return nil, fmt.Errorf("record %d: duplicate rank %d", i, row.Rank)
		}
		seen[row.Rank] = struct{}{}
		rows = append(rows, row)
	}

	for rank := 1; rank <= len(rows); rank++ {
		if _, ok := seen[rank]; !ok {
			return nil, fmt.Errorf("rank %d is missing, ranks must run from 1 to %d", rank, len(rows))
		}
	}
	return rows, nil
}

// Project selects a column list over the rows. The table owns copies of both slices.
func Project(rows []schema.FlatRow, cols []schema.Column) schema.Table {
	return schema.Table{
		Columns: slices.Clone(cols),
		Rows:    slices.Clone(rows),
	}
}

// fieldReader collects the dotted names of required fields that are absent.
type fieldReader struct {
	missing []string
}

func (f *fieldReader) int(name string, v *int) int {
	if v == nil {
		f.missing = append(f.missing, name)
		return 0
	}
	return *v
}

func (f *fieldReader) string(name string, v *string) string {
	if v == nil {
		f.missing = append(f.missing, name)
		return ""
	}
	return *v
}

func (f *fieldReader) err() error {
	if len(f.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing %s", strings.Join(f.missing, ", "))
}

type splitCounts struct {
	played, win, draw, lose, goalsFor, goalsAgainst int
}

func (f *fieldReader) split(key string, s *schema.SplitStats) splitCounts {
	if s == nil {
		f.missing = append(f.missing, key)
		return splitCounts{}
	}
	out := splitCounts{
		played: f.int(key+".played", s.Played),
		win:    f.int(key+".win", s.Win),
		draw:   f.int(key+".draw", s.Draw),
		lose:   f.int(key+".lose", s.Lose),
	}
	if s.Goals == nil {
		f.missing = append(f.missing, key+".goals")
		return out
	}
	out.goalsFor = f.int(key+".goals.for", s.Goals.For)
	out.goalsAgainst = f.int(key+".goals.against", s.Goals.Against)
	return out
}

func flattenRecord(rec schema.StandingsRecord) (schema.FlatRow, error) {
	f := &fieldReader{}

	row := schema.FlatRow{
		Rank:   f.int("rank", rec.Rank),
		Points: f.int("points", rec.Points),
	}

	if rec.Team == nil {
		f.missing = append(f.missing, "team")
	} else {
		row.TeamID = rec.Team.ID
		row.TeamName = f.string("team.name", rec.Team.Name)
		row.TeamLogo = f.string("team.logo", rec.Team.Logo)
	}

	total := f.split("all", rec.Total)
	home := f.split("home", rec.Home)
	away := f.split("away", rec.Away)

	if err := f.err(); err != nil {
		return schema.FlatRow{}, err
	}

	row.TotalPlayed, row.TotalWin, row.TotalDraw, row.TotalLose = total.played, total.win, total.draw, total.lose
	row.TotalGoalsFor, row.TotalGoalsAgainst = total.goalsFor, total.goalsAgainst
	row.HomePlayed, row.HomeWin, row.HomeDraw, row.HomeLose = home.played, home.win, home.draw, home.lose
	row.HomeGoalsFor, row.HomeGoalsAgainst = home.goalsFor, home.goalsAgainst
	row.AwayPlayed, row.AwayWin, row.AwayDraw, row.AwayLose = away.played, away.win, away.draw, away.lose
	row.AwayGoalsFor, row.AwayGoalsAgainst = away.goalsFor, away.goalsAgainst
	return row, nil
}
