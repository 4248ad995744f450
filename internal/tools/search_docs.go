package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchDocsTool handles the search_context_documents MCP tool.
type SearchDocsTool struct {
	provider *Provider
}

// NewSearchDocsTool creates a SearchDocsTool.
func NewSearchDocsTool(p *Provider) *SearchDocsTool {
	return &SearchDocsTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchDocsTool) Definition() mcp.Tool {
	return mcp.NewTool("search_context_documents",
		mcp.WithDescription(
			"Search all context documents for a keyword or phrase. Returns "+
				"matching lines with surrounding context. An empty query returns "+
				"nothing rather than dumping the corpus.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term or phrase to find in context documents"),
		),
	)
}

// Handle processes the search_context_documents tool call.
func (t *SearchDocsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")

	reg, err := t.provider.Registry()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := reg.SearchDocuments(query)
	if len(matches) == 0 {
		return mcp.NewToolResultText("No matching documents."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search: %q (%d matches)\n", query, len(matches))
	lastPath := ""
	for _, m := range matches {
		if m.Path != lastPath {
			fmt.Fprintf(&b, "\n## %s\n\n", m.Path)
			lastPath = m.Path
		}
		fmt.Fprintf(&b, "line %d:\n```\n%s\n```\n", m.Line, m.Snippet)
	}

	return mcp.NewToolResultText(b.String()), nil
}
