//go:build basic

// Package integration contains integration tests for standings.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotPoints reads team name -> points straight from the fixture JSON.
func snapshotPoints(t *testing.T) map[string]int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", fixtureDataDir, "2022", "standings", "premier-league.json"))
	require.NoError(t, err)

	var records []struct {
		Team struct {
			Name string `json:"name"`
		} `json:"team"`
		Points int `json:"points"`
	}
	require.NoError(t, json.Unmarshal(data, &records))

	points := make(map[string]int, len(records))
	for _, r := range records {
		points[r.Team.Name] = r.Points
	}
	return points
}

// TestShowCSVVerification checks the CSV export against the raw snapshot.
func TestShowCSVVerification(t *testing.T) {
	stdout, _, err := runStandings(t, "show", "--output", "csv", "--view", "reduced")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 21) // header + 20 teams

	header := records[0]
	assert.Equal(t, []string{
		"rank", "team_logo", "team_name", "total_played", "total_win", "total_draw",
		"total_lose", "total_goals.for", "total_goals.against", "points",
	}, header)

	want := snapshotPoints(t)
	for i, rec := range records[1:] {
		assert.Equal(t, strconv.Itoa(i+1), rec[0])
		points, err := strconv.Atoi(rec[9])
		require.NoError(t, err)
		assert.Equal(t, want[rec[2]], points, "points mismatch for %s", rec[2])
	}
}

// TestShowJSONFullView checks the full view column set and order.
func TestShowJSONFullView(t *testing.T) {
	stdout, _, err := runStandings(t, "show", "--output", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 20)
	assert.Len(t, rows[0], 18)
	assert.Equal(t, "Manchester City", rows[0]["team_name"])
	assert.NotContains(t, rows[0], "home_goals.against")
	assert.NotContains(t, rows[0], "away_win")
	assert.Less(t, strings.Index(stdout, `"rank"`), strings.Index(stdout, `"points"`))
}

// TestShowTextTable checks the plain text rendering.
func TestShowTextTable(t *testing.T) {
	stdout, _, err := runStandings(t, "show", "--width", "200")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Premier League 2022")
	assert.Contains(t, stdout, "[18-20] Relegation")
	assert.Contains(t, stdout, "Southampton")
	assert.Contains(t, stdout, "Showing 20 teams (full view)")
}

// TestShowMissingSnapshot checks that a missing file fails with a not found error.
func TestShowMissingSnapshot(t *testing.T) {
	_, stderr, err := runStandings(t, "show", "--year", "2020", "--league", "bundesliga")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr, "snapshot not found")
}

// TestShowRejectsBadSelection checks config validation before loading.
func TestShowRejectsBadSelection(t *testing.T) {
	_, stderr, err := runStandings(t, "show", "--year", "2019")
	require.Error(t, err)
	assert.Contains(t, stderr, "unsupported year 2019")
}

// TestBrowseScript drives the viewer through stdin.
func TestBrowseScript(t *testing.T) {
	cmd := exec.Command(getStandingsBinary(), "browse", "--data-dir", fixtureDataDir,
		"--logos", "no", "--color", "no", "--emoji", "no", "--width", "200")
	cmd.Dir = "../"
	cmd.Stdin = strings.NewReader("view reduced\nyear 2021\nquit\n")
	out, err := cmd.Output()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Showing 20 teams (full view)")
	assert.Contains(t, text, "Showing 20 teams (reduced view)")
	assert.Contains(t, text, "Cannot show Premier League 2021")
}
