package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.SnapshotLoader
}

type leagueInfo struct {
	ID   schema.League `json:"id"`
	Name string        `json:"name"`
}

type selectionsResult struct {
	Years   []int             `json:"years"`
	Leagues []leagueInfo      `json:"leagues"`
	Views   []schema.ViewMode `json:"views"`
}

type highlightResult struct {
	Rank      int              `json:"rank"`
	Highlight schema.Highlight `json:"highlight"`
	Label     string           `json:"label,omitempty"`
}

func (h *toolHandler) handleGetStandings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Each call works on its own copy of the base config
	cfg := h.baseCfg.Clone()
	if y := request.GetInt("year", 0); y != 0 {
		cfg.Year = y
	}
	if l := request.GetString("league", ""); l != "" {
		league, ok := schema.LeagueFromName(l)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid league %q", l)), nil
		}
		cfg.League = league
	}
	if v := request.GetString("view", ""); v != "" {
		cfg.View = schema.ViewMode(strings.ToLower(v))
	}

	if !schema.IsSupportedYear(cfg.Year) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid year %d", cfg.Year)), nil
	}
	if _, ok := schema.ValidViewModes[cfg.View]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid view %q", cfg.View)), nil
	}
	sel := cfg.Selection()

	table, err := core.GetStandingsTable(h.loader, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading standings failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table.Records(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListSelections(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := selectionsResult{
		Years: schema.SupportedYears,
		Views: []schema.ViewMode{schema.ReducedView, schema.FullView},
	}
	for _, l := range schema.SupportedLeagues {
		result.Leagues = append(result.Leagues, leagueInfo{ID: l, Name: l.DisplayName()})
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHighlight(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rank := request.GetInt("rank", 0)
	if rank < 1 {
		return mcp.NewToolResultError("rank must be at least 1"), nil
	}

	jsonData, _ := json.MarshalIndent(highlightResult{
		Rank:      rank,
		Highlight: schema.HighlightForRank(rank),
		Label:     contract.GetPlainLabel(rank),
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
