package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ContextFilesTool handles the get_context_files MCP tool.
type ContextFilesTool struct {
	provider *Provider
}

// NewContextFilesTool creates a ContextFilesTool.
func NewContextFilesTool(p *Provider) *ContextFilesTool {
	return &ContextFilesTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ContextFilesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_context_files",
		mcp.WithDescription(
			"List all registered context documents with their titles and "+
				"freshness markers.",
		),
	)
}

// Handle processes the get_context_files tool call.
func (t *ContextFilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := t.provider.Corpus()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(c.Documents) == 0 {
		return mcp.NewToolResultText("No context documents are registered."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Context Documents (%d)\n\n", len(c.Documents))
	for _, doc := range c.Documents {
		fmt.Fprintf(&b, "- `%s` — %s", doc.Path, doc.Title)
		if doc.VersionTag != "" {
			fmt.Fprintf(&b, " (%s)", doc.VersionTag)
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}
