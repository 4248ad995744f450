package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/scout/internal/registry"
)

// SubsystemFilesTool handles the get_files_for_subsystem MCP tool.
type SubsystemFilesTool struct {
	provider *Provider
}

// NewSubsystemFilesTool creates a SubsystemFilesTool.
func NewSubsystemFilesTool(p *Provider) *SubsystemFilesTool {
	return &SubsystemFilesTool{provider: p}
}

// Definition returns the MCP tool definition for registration.
func (t *SubsystemFilesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_files_for_subsystem",
		mcp.WithDescription(
			"Get the key file paths for a specific subsystem, in their declared "+
				"order. Keys are case-sensitive — use list_subsystems to see them.",
		),
		mcp.WithString("subsystem",
			mcp.Required(),
			mcp.Description("Subsystem key, e.g. 'networking' or 'combat'"),
		),
	)
}

// Handle processes the get_files_for_subsystem tool call.
func (t *SubsystemFilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := strings.TrimSpace(req.GetString("subsystem", ""))
	if key == "" {
		return mcp.NewToolResultError("'subsystem' is required — pass a subsystem key from list_subsystems"), nil
	}

	reg, err := t.provider.Registry()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := reg.FilesForSubsystem(key)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownSubsystem) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"unknown subsystem %q — available: %s",
				key, strings.Join(reg.SubsystemKeys(), ", "),
			)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Files for %s (%d)\n\n", key, len(files))
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}

	return mcp.NewToolResultText(b.String()), nil
}
