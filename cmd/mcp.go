package cmd

import (
	"github.com/huangsam/standings/core"
	"github.com/huangsam/standings/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Standings MCP server",
	Long:    `Launch an MCP server over stdio that lets AI agents read league tables via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, core.NewDirLoader(cfg.DataDir))
	},
}
