// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"
	"strings"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Standings MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.SnapshotLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Football Standings Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	leagues := make([]string, len(schema.SupportedLeagues))
	for i, l := range schema.SupportedLeagues {
		leagues[i] = string(l)
	}

	// --- 1. Tool: get_standings ---
	s.AddTool(mcp.NewTool("get_standings",
		mcp.WithDescription("Get the league table of one season as rows keyed by flattened column name."),
		mcp.WithNumber("year", mcp.Description("Season start year (2022, 2021 or 2020). Defaults to the configured year.")),
		mcp.WithString("league", mcp.Description("League id ("+strings.Join(leagues, ", ")+") or display name. Defaults to the configured league.")),
		mcp.WithString("view", mcp.Description("Column projection. Defaults to 'full'."), mcp.Enum(string(schema.ReducedView), string(schema.FullView))),
	), h.handleGetStandings)

	// --- 2. Tool: list_selections ---
	s.AddTool(mcp.NewTool("list_selections",
		mcp.WithDescription("List the seasons, leagues and views that can be requested."),
	), h.handleListSelections)

	// --- 3. Tool: get_highlight ---
	s.AddTool(mcp.NewTool("get_highlight",
		mcp.WithDescription("Get the highlight category of a table position."),
		mcp.WithNumber("rank", mcp.Description("Table position, starting at 1."), mcp.Required()),
	), h.handleGetHighlight)

	return s
}

// StartMCPServer starts the Standings MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.SnapshotLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
