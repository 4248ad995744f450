// Package resources implements MCP resource handlers for the context
// corpus.
//
// Resources provide read-only data the host can pull for context. They use
// URI-based addressing (scout://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/scout/internal/corpus"
)

// CorpusSource supplies the loaded corpus. Satisfied by tools.Provider.
type CorpusSource interface {
	Corpus() (*corpus.Corpus, error)
}

// Handler manages the scout resource endpoints.
type Handler struct {
	src CorpusSource
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(src CorpusSource) *Handler {
	return &Handler{src: src}
}

// ConstitutionResource returns the MCP resource definition for the
// constitution document.
func (h *Handler) ConstitutionResource() mcp.Resource {
	return mcp.NewResource(
		"scout://constitution",
		"Project Constitution",
		mcp.WithResourceDescription("The always-loaded top-level project conventions document"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleConstitution returns the constitution's full text.
func (h *Handler) HandleConstitution(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	c, err := h.src.Corpus()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	if !c.Constitution.Found {
		return errorResource(req.Params.URI, "constitution file not found"), nil
	}

	data, err := os.ReadFile(filepath.Join(c.Root, filepath.FromSlash(c.Constitution.Path)))
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(data),
		},
	}, nil
}

// FileMapResource returns the MCP resource definition for the generated
// file map.
func (h *Handler) FileMapResource() mcp.Resource {
	return mcp.NewResource(
		"scout://file-map",
		"Subsystem File Map",
		mcp.WithResourceDescription("Key file locations organized by subsystem"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleFileMap renders the subsystem index as a markdown file map.
func (h *Handler) HandleFileMap(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	c, err := h.src.Corpus()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	var b strings.Builder
	b.WriteString("# File Map\n\nKey file locations organized by subsystem.\n")
	for _, s := range c.Subsystems {
		fmt.Fprintf(&b, "\n## %s\n*%s*\n\n", s.Name, s.Description)
		for _, f := range s.Files {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     b.String(),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
