package corpus

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/scout/internal/config"
)

// registryFile is the on-disk shape of the subsystem/agent declarations.
type registryFile struct {
	Subsystems []Subsystem `yaml:"subsystems"`
	Agents     []Agent     `yaml:"agents"`
}

// Load assembles the corpus from the project at root. Malformed individual
// declarations are skipped and reported via the returned LoadErrors; the
// remainder of the corpus still loads. Only a structurally unreadable
// registry file aborts the load entirely.
func Load(root string, cfg *config.Config) (*Corpus, []LoadError, error) {
	c := &Corpus{
		Root:       root,
		SourceRoot: cfg.SourceRoot,
	}
	var loadErrs []LoadError

	subs, agents, errs, err := loadRegistry(root, cfg)
	if err != nil {
		return nil, nil, err
	}
	c.Subsystems = subs
	c.Agents = agents
	loadErrs = append(loadErrs, errs...)

	docs, errs := loadDocuments(root, cfg)
	c.Documents = docs
	loadErrs = append(loadErrs, errs...)

	constitution, errs := loadConstitution(root, cfg)
	c.Constitution = constitution
	loadErrs = append(loadErrs, errs...)

	return c, loadErrs, nil
}

// loadRegistry parses the declarations file, validating entries one at a
// time so a single bad entry cannot take the whole registry down.
func loadRegistry(root string, cfg *config.Config) ([]Subsystem, []Agent, []LoadError, error) {
	regPath := filepath.Join(root, cfg.Registry)
	relPath := filepath.ToSlash(cfg.Registry)

	data, err := os.ReadFile(regPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, []LoadError{{Source: relPath, Reason: "registry file not found"}}, nil
		}
		return nil, nil, nil, fmt.Errorf("reading registry %s: %w", regPath, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, nil, fmt.Errorf("parsing registry %s: %w", regPath, err)
	}

	var loadErrs []LoadError

	var subs []Subsystem
	seenKeys := map[string]bool{}
	for i, s := range file.Subsystems {
		source := fmt.Sprintf("%s#subsystems[%d]", relPath, i)
		switch {
		case s.Key == "":
			loadErrs = append(loadErrs, LoadError{Source: source, Reason: "subsystem declaration has no key"})
			continue
		case seenKeys[s.Key]:
			loadErrs = append(loadErrs, LoadError{Source: source, Reason: fmt.Sprintf("duplicate subsystem key %q", s.Key)})
			continue
		}
		if s.Name == "" {
			s.Name = s.Key
		}
		seenKeys[s.Key] = true
		subs = append(subs, s)
	}

	var agents []Agent
	seenNames := map[string]bool{}
	for i, a := range file.Agents {
		source := fmt.Sprintf("%s#agents[%d]", relPath, i)
		switch {
		case a.Name == "":
			loadErrs = append(loadErrs, LoadError{Source: source, Reason: "agent declaration has no name"})
			continue
		case seenNames[a.Name]:
			loadErrs = append(loadErrs, LoadError{Source: source, Reason: fmt.Sprintf("duplicate agent name %q", a.Name)})
			continue
		}
		if a.Spec == "" {
			a.Spec = path.Join(filepath.ToSlash(cfg.AgentsDir), a.Name+".md")
		}
		seenNames[a.Name] = true
		agents = append(agents, a)
	}

	return subs, agents, loadErrs, nil
}

// loadDocuments discovers context documents with the configured glob
// patterns and parses each. Discovery order is lexical so repeated loads
// of an unchanged corpus are identical.
func loadDocuments(root string, cfg *config.Config) ([]Document, []LoadError) {
	contextDir := filepath.Join(root, cfg.ContextDir)
	if info, err := os.Stat(contextDir); err != nil || !info.IsDir() {
		// No context directory is a valid (if empty) corpus.
		return nil, nil
	}

	fsys := os.DirFS(contextDir)
	seen := map[string]bool{}
	var matches []string
	var loadErrs []LoadError

	for _, pattern := range cfg.DocPatterns {
		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			loadErrs = append(loadErrs, LoadError{
				Source: filepath.ToSlash(cfg.ContextDir),
				Reason: fmt.Sprintf("bad document pattern %q: %v", pattern, err),
			})
			continue
		}
		for _, m := range found {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}
	sort.Strings(matches)

	var docs []Document
	for _, m := range matches {
		relPath := path.Join(filepath.ToSlash(cfg.ContextDir), m)
		data, err := os.ReadFile(filepath.Join(contextDir, filepath.FromSlash(m)))
		if err != nil {
			loadErrs = append(loadErrs, LoadError{Source: relPath, Reason: fmt.Sprintf("unreadable: %v", err)})
			continue
		}
		docs = append(docs, parseDocument(relPath, string(data)))
	}

	return docs, loadErrs
}

// loadConstitution reads and parses the constitution. A missing file is a
// load error but not fatal — retrieval still works, and the validator
// reports what it can.
func loadConstitution(root string, cfg *config.Config) (Constitution, []LoadError) {
	relPath := filepath.ToSlash(cfg.Constitution)
	data, err := os.ReadFile(filepath.Join(root, cfg.Constitution))
	if err != nil {
		reason := fmt.Sprintf("unreadable: %v", err)
		if os.IsNotExist(err) {
			reason = "constitution file not found"
		}
		return Constitution{Path: relPath}, []LoadError{{Source: relPath, Reason: reason}}
	}
	return parseConstitution(relPath, string(data)), nil
}
