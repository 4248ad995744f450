package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSubsystemsTool handles the list_subsystems MCP tool.
type ListSubsystemsTool struct {
	provider *Provider
}

// NewListSubsystemsTool creates a ListSubsystemsTool.
func NewListSubsystemsTool(p *Provider) *ListSubsystemsTool {
	return &ListSubsystemsTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ListSubsystemsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_subsystems",
		mcp.WithDescription(
			"List all architectural subsystems with brief descriptions and their "+
				"matching keywords. Use this to discover what parts of the codebase "+
				"exist before asking for files.",
		),
	)
}

// Handle processes the list_subsystems tool call.
func (t *ListSubsystemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg, err := t.provider.Registry()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	subs := reg.ListSubsystems()
	if len(subs) == 0 {
		return mcp.NewToolResultText("No subsystems are registered."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Subsystems (%d)\n\n", len(subs))
	for _, s := range subs {
		fmt.Fprintf(&b, "- **%s** — %s: %s\n", s.Key, s.Name, s.Description)
		if len(s.Keywords) > 0 {
			fmt.Fprintf(&b, "  keywords: %s\n", strings.Join(s.Keywords, ", "))
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
