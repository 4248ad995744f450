package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/scout/internal/validate"
)

// CheckTool handles the context_check MCP tool. It runs the same
// consistency checks as `scout check`, so a session can verify the corpus
// without shelling out.
type CheckTool struct {
	provider *Provider
}

// NewCheckTool creates a CheckTool.
func NewCheckTool(p *Provider) *CheckTool {
	return &CheckTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *CheckTool) Definition() mcp.Tool {
	return mcp.NewTool("context_check",
		mcp.WithDescription(
			"Validate the context corpus: broken constitution references, "+
				"missing agent specs, dangling document cross-references, missing "+
				"source files, orphaned documents, and stale freshness markers. "+
				"Run this at session start and triage any ERROR lines before "+
				"trusting the context documents.",
		),
	)
}

// Handle processes the context_check tool call.
func (t *CheckTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := t.provider.Corpus()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := validate.Run(c)

	var b strings.Builder
	validate.RenderLoadErrors(&b, t.provider.LoadErrors())
	report.Render(&b)

	return mcp.NewToolResultText(b.String()), nil
}
