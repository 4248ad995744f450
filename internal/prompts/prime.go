// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which the
// AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PrimePrompt handles the scout-prime MCP prompt. It primes a fresh
// session: check the corpus for drift, then survey what context exists.
type PrimePrompt struct{}

// NewPrimePrompt creates a PrimePrompt.
func NewPrimePrompt() *PrimePrompt {
	return &PrimePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PrimePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("scout-prime",
		mcp.WithPromptDescription(
			"Prime a new session: validate the context corpus and survey the "+
				"registered subsystems and agents before starting work.",
		),
		mcp.WithArgument("task",
			mcp.ArgumentDescription("Optional description of the task this session will tackle"),
		),
	)
}

// Handle processes the scout-prime prompt request.
func (p *PrimePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	task := ""
	if args := req.Params.Arguments; args != nil {
		task = args["task"]
	}

	taskStep := ""
	if task != "" {
		taskStep = fmt.Sprintf(
			"4. Call find_relevant_context and suggest_agent with the task: %q.\n", task)
	}

	text := "Prime this session against the project's context corpus:\n\n" +
		"1. Call context_check. Triage every ERROR line before trusting the context " +
		"documents; mention WARN lines to the user if they affect the current work.\n" +
		"2. Call list_subsystems to see how the codebase is organized.\n" +
		"3. Read the scout://constitution resource for project conventions.\n" +
		taskStep +
		"\nThen summarize what you found in two or three sentences."

	return &mcp.GetPromptResult{
		Description: "Prime session from the context corpus",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
