package main

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokidex/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the Pokemon lookup tools over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	stdoutReserved.Store(true)

	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	server, err := mcp.NewServer(&mcp.Config{
		Lookup:   a.lookup,
		MaxMoves: a.cfg.MaxMoves,
		Version:  version,
		Logger:   a.logger.Named("mcp"),
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, &sdk.StdioTransport{})
}
