package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxRankedSubsystems caps how many ranked subsystems the tool reports.
const maxRankedSubsystems = 5

// FindContextTool handles the find_relevant_context MCP tool.
type FindContextTool struct {
	provider *Provider
}

// NewFindContextTool creates a FindContextTool.
func NewFindContextTool(p *Provider) *FindContextTool {
	return &FindContextTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *FindContextTool) Definition() mcp.Tool {
	return mcp.NewTool("find_relevant_context",
		mcp.WithDescription(
			"Find the subsystems and files relevant to a task. Matching is "+
				"lexical against subsystem keywords and names; call this at the "+
				"start of a task to know where to look before reading code.",
		),
		mcp.WithString("task_description",
			mcp.Required(),
			mcp.Description("Description of the task to find context for"),
		),
	)
}

// Handle processes the find_relevant_context tool call.
func (t *FindContextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task := strings.TrimSpace(req.GetString("task_description", ""))
	if task == "" {
		return mcp.NewToolResultError("'task_description' is required — describe what you are about to do"), nil
	}

	matcher, err := t.provider.Matcher()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ranked := matcher.RankSubsystems(task)
	files := matcher.FindRelevantContext(task)

	if len(ranked) == 0 {
		// A normal outcome, not a failure: the caller should fall back
		// to searching the codebase directly.
		return mcp.NewToolResultText("No relevant context found for this task."), nil
	}
	if len(ranked) > maxRankedSubsystems {
		ranked = ranked[:maxRankedSubsystems]
	}

	var b strings.Builder
	b.WriteString("# Relevant Context\n\n## Subsystems\n\n")
	for _, sub := range ranked {
		fmt.Fprintf(&b, "- **%s** (score %.0f): %s", sub.Key, sub.Score, sub.Description)
		if len(sub.Matched) > 0 {
			fmt.Fprintf(&b, " — matched: %s", strings.Join(sub.Matched, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Suggested Files\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s` (%s, score %.0f)\n", f.Path, f.Subsystem, f.Score)
	}

	return mcp.NewToolResultText(b.String()), nil
}
