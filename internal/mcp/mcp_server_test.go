package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/contract"
	mcp_internal "github.com/huangsam/standings/internal/mcp"
	"github.com/huangsam/standings/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const split = `{"played":2,"win":1,"draw":1,"lose":0,"goals":{"for":3,"against":1}}`

func record(rank int, name string) string {
	return fmt.Sprintf(`{"rank":%d,"team":{"id":%d,"name":%q,"logo":"https://example.com/%d.png"},"points":%d,"all":%s,"home":%s,"away":%s}`,
		rank, rank, name, rank, 10-rank, split, split, split)
}

func newTestServer() *server.MCPServer {
	fsys := fstest.MapFS{
		"2022/standings/premier-league.json": {Data: []byte("[" + record(1, "Arsenal") + "," + record(2, "Chelsea") + "]")},
		"2021/standings/la-liga.json":        {Data: []byte(`{"broken": true}`)},
	}
	baseCfg := &contract.Config{
		Year:   2022,
		League: schema.PremierLeague,
		View:   schema.FullView,
	}
	return mcp_internal.NewMCPServer(baseCfg, core.NewLoader(fsys))
}

func call(t *testing.T, s *server.MCPServer, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotEmpty(t, res.Content)
	return res, res.Content[0].(mcp.TextContent).Text
}

func TestGetStandings(t *testing.T) {
	s := newTestServer()

	t.Run("defaults", func(t *testing.T) {
		res, text := call(t, s, "get_standings", map[string]any{})
		assert.False(t, res.IsError)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(text), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Arsenal", rows[0]["team_name"])
		assert.Len(t, rows[0], len(schema.FullColumns))
		assert.Contains(t, rows[0], "away_goals.against")
	})

	t.Run("reduced view by display name", func(t *testing.T) {
		res, text := call(t, s, "get_standings", map[string]any{
			"year":   2022.0,
			"league": "Premier League",
			"view":   "reduced",
		})
		assert.False(t, res.IsError)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(text), &rows))
		assert.Len(t, rows[1], len(schema.ReducedColumns))
		assert.NotContains(t, rows[1], "home_win")
		assert.EqualValues(t, 8, rows[1]["points"])
	})

	t.Run("overrides do not carry over", func(t *testing.T) {
		_, _ = call(t, s, "get_standings", map[string]any{"view": "reduced"})
		res, text := call(t, s, "get_standings", map[string]any{})
		assert.False(t, res.IsError)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(text), &rows))
		assert.Len(t, rows[0], len(schema.FullColumns))
	})
}

func TestGetStandingsErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{"unsupported year", map[string]any{"year": 1999.0}, "invalid year 1999"},
		{"unknown league", map[string]any{"league": "serie-a"}, `invalid league "serie-a"`},
		{"bad view", map[string]any{"view": "wide"}, `invalid view "wide"`},
		{"missing snapshot", map[string]any{"year": 2020.0}, "snapshot not found"},
		{"malformed snapshot", map[string]any{"year": 2021.0, "league": "la-liga"}, "snapshot could not be parsed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, text := call(t, s, "get_standings", tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, text, tt.wantMsg)
		})
	}
}

func TestListSelections(t *testing.T) {
	res, text := call(t, newTestServer(), "list_selections", nil)
	assert.False(t, res.IsError)

	var got struct {
		Years   []int `json:"years"`
		Leagues []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"leagues"`
		Views []string `json:"views"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, []int{2022, 2021, 2020}, got.Years)
	require.Len(t, got.Leagues, 3)
	assert.Equal(t, "la-liga", got.Leagues[1].ID)
	assert.Equal(t, "La Liga", got.Leagues[1].Name)
	assert.Equal(t, []string{"reduced", "full"}, got.Views)
}

func TestGetHighlight(t *testing.T) {
	s := newTestServer()

	_, text := call(t, s, "get_highlight", map[string]any{"rank": 5.0})
	assert.Contains(t, text, `"highlight": "continental-mid"`)
	assert.Contains(t, text, `"label": "Europa League"`)

	_, text = call(t, s, "get_highlight", map[string]any{"rank": 19.0})
	assert.Contains(t, text, `"highlight": "relegation"`)
	assert.Contains(t, text, `"label": "Relegation"`)

	_, text = call(t, s, "get_highlight", map[string]any{"rank": 12.0})
	assert.Contains(t, text, `"highlight": "none"`)
	assert.NotContains(t, text, "label")

	res, text := call(t, s, "get_highlight", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "rank must be at least 1")
}
