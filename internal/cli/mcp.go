package cli

import (
	"github.com/cantonlabs/ledgerview/internal/logging"
	"github.com/cantonlabs/ledgerview/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the assistant server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients (Claude Desktop, etc.) to communicate
with ledgerview. It should not be run directly by users.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	// Stdout carries protocol frames; diagnostics go to stderr.
	logger := logging.New("ledgerview")
	logger.Debug("starting stdio server")

	return mcp.NewServer(dispatcher).Serve()
}
