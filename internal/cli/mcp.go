// mcp.go implements "zen mcp", the Model Context Protocol server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/zen/internal/mcpserver"
)

func newMCPCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve draw_hexagram and lookup_hexagram as MCP tools over stdio",
		Long: `Starts zen as an MCP server on standard input/output so agents can
draw hexagrams and read catalog texts. Logs must not go to stdout, use
--log-file or --debug (stderr).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.NewServer(e.engine, version, e.logger)
			e.logger.Info("Starting zen MCP server (stdio)")
			return srv.ServeStdio()
		},
	}
}
