// Scout: project-context retrieval and consistency MCP server.
//
// Scout gives coding agents targeted access to a project's architectural
// knowledge: which subsystems exist, which files and context documents
// matter for a task, and which specialized agent to invoke. It also
// validates that the documentation corpus's cross-references still hold.
//
// Usage:
//
//	scout serve    # Start MCP server (stdio transport)
//	scout check    # Validate the context corpus
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scoutserver "github.com/HendryAvila/scout/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Project-context retrieval and consistency checking",
	Long: `Scout serves a project's architectural knowledge over MCP and
validates that the context-document corpus is internally consistent.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scout version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scout v%s\n", scoutserver.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
