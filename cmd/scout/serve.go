package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	scoutserver "github.com/HendryAvila/scout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the context retrieval MCP server on stdio.

Register it with your coding agent, e.g. for Claude Code:

  "mcpServers": { "scout": { "command": "scout", "args": ["serve"] } }

Diagnostics go to stderr; stdout carries the MCP transport.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scoutserver.New()
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("serving MCP: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
