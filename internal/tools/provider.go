// Package tools implements the MCP tool handlers for context retrieval
// and corpus validation.
//
// Each tool is a struct that receives its dependencies via constructor and
// exposes a Definition plus a Handle compatible with mcp-go's
// CallToolRequest signature. One file per tool.
package tools

import (
	"fmt"
	"log"
	"sync"

	"github.com/HendryAvila/scout/internal/config"
	"github.com/HendryAvila/scout/internal/corpus"
	"github.com/HendryAvila/scout/internal/registry"
	"github.com/HendryAvila/scout/internal/relevance"
)

// Provider loads the corpus once and hands out the shared registry and
// matcher views. The corpus is immutable after load, so a single load
// serves every tool call for the life of the process without locking.
type Provider struct {
	once sync.Once

	c        *corpus.Corpus
	reg      *registry.Registry
	matcher  *relevance.Matcher
	loadErrs []corpus.LoadError
	err      error
}

// NewProvider creates a lazy corpus provider. Nothing is read from disk
// until the first tool call needs the corpus.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) load() {
	root, err := config.FindRoot()
	if err != nil {
		p.err = err
		return
	}

	cfg, err := config.Load(root)
	if err != nil {
		p.err = err
		return
	}

	c, loadErrs, err := corpus.Load(root, cfg)
	if err != nil {
		p.err = err
		return
	}

	// Skip-and-continue diagnostics go to stderr; stdout belongs to the
	// MCP transport.
	for _, le := range loadErrs {
		log.Printf("WARNING: corpus load: %v", le)
	}

	p.c = c
	p.loadErrs = loadErrs
	p.reg = registry.New(c)
	p.matcher = relevance.NewMatcher(c, relevance.DefaultWeights())
}

// Corpus returns the loaded corpus.
func (p *Provider) Corpus() (*corpus.Corpus, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return nil, fmt.Errorf("loading corpus: %w", p.err)
	}
	return p.c, nil
}

// Registry returns the query registry over the loaded corpus.
func (p *Provider) Registry() (*registry.Registry, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return nil, fmt.Errorf("loading corpus: %w", p.err)
	}
	return p.reg, nil
}

// Matcher returns the relevance matcher over the loaded corpus.
func (p *Provider) Matcher() (*relevance.Matcher, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return nil, fmt.Errorf("loading corpus: %w", p.err)
	}
	return p.matcher, nil
}

// LoadErrors returns skip-and-continue diagnostics from the load.
func (p *Provider) LoadErrors() []corpus.LoadError {
	p.once.Do(p.load)
	return p.loadErrs
}
