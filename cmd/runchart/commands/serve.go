package commands

import (
	"runchart/internal/mcp"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the MCP server on stdio, exposing weekly_stats, sync_activities and
render_chart as tools for MCP clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(cfg, trackerClient)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
