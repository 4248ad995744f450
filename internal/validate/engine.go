package validate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/HendryAvila/scout/internal/corpus"
)

// Run executes all check categories against the corpus and filesystem and
// returns the aggregated report. Filesystem checks are stat-only. The
// categories are independent: a failure in one never blocks the others.
func Run(c *corpus.Corpus) *Report {
	r := &Report{}
	index := newDocIndex(c)

	checkConstitutionDocs(r, c, index)
	checkConstitutionAgents(r, c)
	checkDocCrossRefs(r, c, index)
	checkDocSourceRefs(r, c)
	checkOrphans(r, c, index)
	checkFreshness(r, c)

	return r
}

// docIndex resolves document references by exact project-relative path or
// by basename. Documents commonly reference each other by basename alone.
type docIndex struct {
	byPath map[string]string
	byBase map[string]string
}

func newDocIndex(c *corpus.Corpus) *docIndex {
	idx := &docIndex{
		byPath: map[string]string{},
		byBase: map[string]string{},
	}
	for _, doc := range c.Documents {
		idx.byPath[doc.Path] = doc.Path
		idx.byBase[path.Base(doc.Path)] = doc.Path
	}
	return idx
}

// resolve returns the registered path a reference points at, or "" when
// the reference matches no registered document.
func (idx *docIndex) resolve(ref string) string {
	ref = filepath.ToSlash(ref)
	if p, ok := idx.byPath[ref]; ok {
		return p
	}
	if p, ok := idx.byBase[path.Base(ref)]; ok {
		return p
	}
	return ""
}

// checkConstitutionDocs verifies that every document path the constitution
// references exists on disk. References are resolved through the document
// index first, so a basename mention of a registered document counts the
// same here as it does for the orphan check. The constitution is the root
// of the graph, so a dangling reference here is always an error.
func checkConstitutionDocs(r *Report, c *corpus.Corpus, idx *docIndex) {
	if !c.Constitution.Found {
		r.add(SeverityError, CategoryConstitutionDocs, c.Constitution.Path,
			"constitution file not found")
		return
	}
	for _, ref := range c.Constitution.DocRefs {
		target := ref.Target
		if p := idx.resolve(target); p != "" {
			target = p
		}
		if !fileExists(c.Root, target) {
			r.add(SeverityError, CategoryConstitutionDocs,
				fmt.Sprintf("%s:%d", c.Constitution.Path, ref.Line),
				fmt.Sprintf("referenced document %s does not exist", ref.Target))
		}
	}
}

// checkConstitutionAgents verifies that every agent named by the
// constitution's trigger table is registered and has a spec file on disk.
func checkConstitutionAgents(r *Report, c *corpus.Corpus) {
	if !c.Constitution.Found {
		return
	}
	for _, ref := range c.Constitution.AgentRefs {
		source := fmt.Sprintf("%s:%d", c.Constitution.Path, ref.Line)

		agent := findAgent(c, ref.Target)
		if agent == nil {
			r.add(SeverityError, CategoryConstitutionAgents, source,
				fmt.Sprintf("agent %q is not registered", ref.Target))
			continue
		}
		if !fileExists(c.Root, agent.Spec) {
			r.add(SeverityError, CategoryConstitutionAgents, source,
				fmt.Sprintf("agent %q has no spec file at %s", ref.Target, agent.Spec))
		}
	}
}

// checkDocCrossRefs verifies document-to-document references against the
// document index. A References-section entry is a load-bearing claim and a
// miss is an error; a prose mention only warrants a warning.
func checkDocCrossRefs(r *Report, c *corpus.Corpus, idx *docIndex) {
	for _, doc := range c.Documents {
		for _, ref := range doc.SectionRefs {
			if idx.resolve(ref) == "" {
				r.add(SeverityError, CategoryDocCrossRefs, doc.Path,
					fmt.Sprintf("References section names %s, which is not a registered document", ref))
			}
		}
		for _, ref := range doc.ProseRefs {
			if idx.resolve(ref) == "" {
				r.add(SeverityWarning, CategoryDocCrossRefs, doc.Path,
					fmt.Sprintf("mentions %s, which is not a registered document", ref))
			}
		}
	}
}

// checkDocSourceRefs verifies that source files listed in References
// sections exist under the source root. A References section is a
// load-bearing claim, so a missing source file is an error just like a
// missing document.
func checkDocSourceRefs(r *Report, c *corpus.Corpus) {
	for _, doc := range c.Documents {
		for _, ref := range doc.SourceRefs {
			rel := path.Join(filepath.ToSlash(c.SourceRoot), filepath.ToSlash(ref))
			if !fileExists(c.Root, rel) {
				r.add(SeverityError, CategoryDocSourceRefs, doc.Path,
					fmt.Sprintf("References section names source file %s, which does not exist", ref))
			}
		}
	}
}

// checkOrphans flags documents referenced by neither the constitution nor
// any subsystem file list. An unreferenced document is likely stale or
// abandoned.
func checkOrphans(r *Report, c *corpus.Corpus, idx *docIndex) {
	referenced := map[string]bool{}
	for _, ref := range c.Constitution.DocRefs {
		if p := idx.resolve(ref.Target); p != "" {
			referenced[p] = true
		}
	}
	for _, sub := range c.Subsystems {
		for _, f := range sub.Files {
			if path.Ext(f) != ".md" {
				continue
			}
			if p := idx.resolve(f); p != "" {
				referenced[p] = true
			}
		}
	}

	for _, doc := range c.Documents {
		if !referenced[doc.Path] {
			r.add(SeverityWarning, CategoryOrphans, doc.Path,
				"not referenced by the constitution or any subsystem")
		}
	}
}

// checkFreshness flags documents without a recognizable version or
// last-verified marker at their top.
func checkFreshness(r *Report, c *corpus.Corpus) {
	for _, doc := range c.Documents {
		if doc.VersionTag == "" {
			r.add(SeverityWarning, CategoryFreshness, doc.Path,
				"no version or last-verified marker in document head")
		}
	}
}

func findAgent(c *corpus.Corpus, name string) *corpus.Agent {
	for i := range c.Agents {
		if c.Agents[i].Name == name {
			return &c.Agents[i]
		}
	}
	return nil
}

func fileExists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}
