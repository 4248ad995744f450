package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/scout/internal/relevance"
)

// SuggestAgentTool handles the suggest_agent MCP tool.
type SuggestAgentTool struct {
	provider *Provider
}

// NewSuggestAgentTool creates a SuggestAgentTool.
func NewSuggestAgentTool(p *Provider) *SuggestAgentTool {
	return &SuggestAgentTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *SuggestAgentTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_agent",
		mcp.WithDescription(
			"Suggest which specialized agent to invoke for a task, based on "+
				"trigger-phrase matching. Use this at the start of a task; a "+
				"'high' or 'medium' confidence suggestion is worth following.",
		),
		mcp.WithString("task_description",
			mcp.Required(),
			mcp.Description("Description of the task you are about to perform"),
		),
	)
}

// Handle processes the suggest_agent tool call.
func (t *SuggestAgentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task := strings.TrimSpace(req.GetString("task_description", ""))
	if task == "" {
		return mcp.NewToolResultError("'task_description' is required — describe the task to get an agent suggestion"), nil
	}

	matcher, err := t.provider.Matcher()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s := matcher.SuggestAgent(task)
	if len(s.Matches) == 0 {
		return mcp.NewToolResultText("No agent matches this task. Proceed without a specialist."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Agent Suggestion\n\n**Recommendation:** %s (confidence: %s)\n",
		s.Recommended(), s.Confidence)
	if s.Disambiguation != "" {
		fmt.Fprintf(&b, "\n_%s_\n", s.Disambiguation)
	}
	shouldInvoke := s.Confidence == relevance.ConfidenceHigh || s.Confidence == relevance.ConfidenceMedium
	fmt.Fprintf(&b, "\n**Should invoke:** %v\n\n## Candidates\n\n", shouldInvoke)

	for _, m := range s.Matches {
		fmt.Fprintf(&b, "- **%s** (model %s, score %.2f): %s\n", m.Name, m.Model, m.Score, m.Description)
		if len(m.Matched) > 0 {
			fmt.Fprintf(&b, "  matched triggers: %s\n", strings.Join(m.Matched, ", "))
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
