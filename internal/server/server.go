// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/scout/internal/prompts"
	"github.com/HendryAvila/scout/internal/resources"
	"github.com/HendryAvila/scout/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where dependencies are
// resolved.
func New() *server.MCPServer {
	// All tools share one lazily loaded corpus. The corpus is immutable
	// after load, so concurrent tool calls need no locking.
	provider := tools.NewProvider()

	s := server.NewMCPServer(
		"scout",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register retrieval tools ---

	listSubsystems := tools.NewListSubsystemsTool(provider)
	s.AddTool(listSubsystems.Definition(), listSubsystems.Handle)

	subsystemFiles := tools.NewSubsystemFilesTool(provider)
	s.AddTool(subsystemFiles.Definition(), subsystemFiles.Handle)

	findContext := tools.NewFindContextTool(provider)
	s.AddTool(findContext.Definition(), findContext.Handle)

	searchDocs := tools.NewSearchDocsTool(provider)
	s.AddTool(searchDocs.Definition(), searchDocs.Handle)

	contextFiles := tools.NewContextFilesTool(provider)
	s.AddTool(contextFiles.Definition(), contextFiles.Handle)

	suggestAgent := tools.NewSuggestAgentTool(provider)
	s.AddTool(suggestAgent.Definition(), suggestAgent.Handle)

	listAgents := tools.NewListAgentsTool(provider)
	s.AddTool(listAgents.Definition(), listAgents.Handle)

	// --- Register validation tool ---

	check := tools.NewCheckTool(provider)
	s.AddTool(check.Definition(), check.Handle)

	// --- Register prompts ---

	prime := prompts.NewPrimePrompt()
	s.AddPrompt(prime.Definition(), prime.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(provider)
	s.AddResource(resourceHandler.ConstitutionResource(), resourceHandler.HandleConstitution)
	s.AddResource(resourceHandler.FileMapResource(), resourceHandler.HandleFileMap)

	return s
}

func serverInstructions() string {
	return `You have access to scout, a project-context retrieval MCP server.

## WHEN TO USE scout

At the START of any non-trivial task:
- Call find_relevant_context with the task description to learn which
  subsystems and files matter.
- Call suggest_agent with the task description; invoke the recommended
  agent when confidence is high or medium.

While working:
- Use get_files_for_subsystem once you know which subsystem you are in.
- Use search_context_documents to find where a concept is documented
  instead of grepping the whole repository.

At SESSION START:
- Call context_check. ERROR lines mean a context document makes a claim
  that no longer holds — do not trust that document until it is fixed.
  WARN lines are worth mentioning to the user when they touch the
  current work.

## WHAT scout IS NOT

scout matches lexically against curated keywords and trigger phrases. It
does not understand the task — phrase queries with the domain words the
project actually uses. An empty result means "no curated context", not
an error; fall back to reading the code.`
}
