package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListAgentsTool handles the list_agents MCP tool.
type ListAgentsTool struct {
	provider *Provider
}

// NewListAgentsTool creates a ListAgentsTool.
func NewListAgentsTool(p *Provider) *ListAgentsTool {
	return &ListAgentsTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ListAgentsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_agents",
		mcp.WithDescription(
			"List all specialized agents with their descriptions, trigger "+
				"phrases, and model assignments.",
		),
	)
}

// Handle processes the list_agents tool call.
func (t *ListAgentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg, err := t.provider.Registry()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	agents := reg.ListAgents()
	if len(agents) == 0 {
		return mcp.NewToolResultText("No agents are registered."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Agents (%d)\n\n", len(agents))
	for _, a := range agents {
		fmt.Fprintf(&b, "## %s (model: %s)\n\n%s\n\ntriggers: %s\n\n",
			a.Name, a.Model, a.Description, strings.Join(a.Triggers, ", "))
	}

	return mcp.NewToolResultText(b.String()), nil
}
