// Package registry exposes read-only query operations over a loaded
// corpus: subsystem listings, per-subsystem file lookups, document search,
// and the agent roster.
//
// All operations are pure reads. The corpus is never mutated after load,
// so a single Registry may be shared by concurrent callers without locking.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/scout/internal/corpus"
)

// ErrUnknownSubsystem is returned when a lookup names a subsystem key that
// is not registered. Keys are case-sensitive exact matches.
var ErrUnknownSubsystem = errors.New("unknown subsystem")

// maxMatchesPerDoc caps search hits reported for a single document.
const maxMatchesPerDoc = 10

// snippetContext is the number of lines of surrounding context included
// with each search hit.
const snippetContext = 2

// Registry wraps a corpus with its query operations.
type Registry struct {
	c *corpus.Corpus
}

// New creates a Registry over the given corpus.
func New(c *corpus.Corpus) *Registry {
	return &Registry{c: c}
}

// SubsystemSummary is one row of ListSubsystems.
type SubsystemSummary struct {
	Key         string
	Name        string
	Description string
	Keywords    []string
}

// ListSubsystems returns all subsystems in declaration order.
func (r *Registry) ListSubsystems() []SubsystemSummary {
	out := make([]SubsystemSummary, 0, len(r.c.Subsystems))
	for _, s := range r.c.Subsystems {
		out = append(out, SubsystemSummary{
			Key:         s.Key,
			Name:        s.Name,
			Description: s.Description,
			Keywords:    s.Keywords,
		})
	}
	return out
}

// FilesForSubsystem returns the declared file list of one subsystem, in
// declaration order. An unregistered key is an error, never a silent empty
// list.
func (r *Registry) FilesForSubsystem(key string) ([]string, error) {
	for _, s := range r.c.Subsystems {
		if s.Key == key {
			files := make([]string, len(s.Files))
			copy(files, s.Files)
			return files, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubsystem, key)
}

// SubsystemKeys returns all registered keys in declaration order.
func (r *Registry) SubsystemKeys() []string {
	keys := make([]string, 0, len(r.c.Subsystems))
	for _, s := range r.c.Subsystems {
		keys = append(keys, s.Key)
	}
	return keys
}

// DocMatch is one search hit.
type DocMatch struct {
	Path    string
	Line    int
	Snippet string
}

// SearchDocuments matches keyword case-insensitively against document
// titles, tag keywords, and body lines. An empty keyword yields an empty
// result rather than the full corpus.
func (r *Registry) SearchDocuments(keyword string) []DocMatch {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var out []DocMatch
	for _, doc := range r.c.Documents {
		matches := searchDocument(doc, keyword)
		if len(matches) > maxMatchesPerDoc {
			matches = matches[:maxMatchesPerDoc]
		}
		out = append(out, matches...)
	}
	return out
}

func searchDocument(doc corpus.Document, keyword string) []DocMatch {
	var matches []DocMatch

	titleHit := strings.Contains(strings.ToLower(doc.Title), keyword)
	if !titleHit {
		for _, kw := range doc.Keywords {
			if strings.Contains(kw, keyword) {
				titleHit = true
				break
			}
		}
	}
	if titleHit {
		matches = append(matches, DocMatch{Path: doc.Path, Line: 1, Snippet: doc.Title})
	}

	for i, line := range doc.Lines {
		if !strings.Contains(strings.ToLower(line), keyword) {
			continue
		}
		start := i - snippetContext
		if start < 0 {
			start = 0
		}
		end := i + snippetContext + 1
		if end > len(doc.Lines) {
			end = len(doc.Lines)
		}
		matches = append(matches, DocMatch{
			Path:    doc.Path,
			Line:    i + 1,
			Snippet: strings.TrimSpace(strings.Join(doc.Lines[start:end], "\n")),
		})
	}

	return matches
}

// ContextFiles returns the paths of all registered context documents.
func (r *Registry) ContextFiles() []string {
	paths := make([]string, 0, len(r.c.Documents))
	for _, doc := range r.c.Documents {
		paths = append(paths, doc.Path)
	}
	return paths
}

// AgentSummary is one row of ListAgents.
type AgentSummary struct {
	Name        string
	Description string
	Triggers    []string
	Model       string
}

// ListAgents returns all agents in declaration order.
func (r *Registry) ListAgents() []AgentSummary {
	out := make([]AgentSummary, 0, len(r.c.Agents))
	for _, a := range r.c.Agents {
		out = append(out, AgentSummary{
			Name:        a.Name,
			Description: a.Description,
			Triggers:    a.Triggers,
			Model:       a.Model,
		})
	}
	return out
}
