package cmd

import (
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/judge"
	"github.com/driftgate/driftgate/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Driftgate MCP server",
	Long:  `Launch an MCP server that allows AI agents to mine repository evidence and judge feature loss via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		// The judge is optional here; evidence tools stay usable without
		// credentials and only analyze_feature_loss reports the gap.
		auditJudge, err := judge.NewOpenAIJudge()
		if err != nil {
			contract.LogWarn("judgment service unavailable for MCP tools", err)
			return mcp.StartMCPServer(rootCtx, cfg, gitClient, nil)
		}
		return mcp.StartMCPServer(rootCtx, cfg, gitClient, auditJudge)
	},
}
