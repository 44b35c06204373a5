package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
the plant dashboard and resolve item IDs.

By default the server communicates over stdio using JSON-RPC.
Use --port to serve the streamable HTTP transport instead.

Examples:
  # Stdio mode (default)
  plantsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  plantsearch mcp serve --port 8090

Client configuration:
  {
    "mcpServers": {
      "plantsearch": {
        "command": "/path/to/plantsearch",
        "args": ["mcp", "serve", "--dataset", "/path/to/site/search-data.json"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Redirect: redirectService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
