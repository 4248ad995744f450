// Package corpus loads the project knowledge corpus: subsystem and agent
// declarations from the registry file, context documents from disk, and the
// constitution's cross-reference tables.
//
// The corpus is assembled once and never mutated afterwards. Query and
// validation code receives it by reference, which keeps both testable
// against synthetic corpora and safe under concurrent callers.
package corpus

import "fmt"

// Subsystem groups source files under one descriptive key.
type Subsystem struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Files       []string `yaml:"files"`
}

// Agent is a named domain-expert persona with trigger conditions for
// automatic invocation.
type Agent struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Triggers    []string `yaml:"triggers"`
	Model       string   `yaml:"model"`

	// Spec is the project-relative path to the agent's spec file.
	// Defaults to <agents_dir>/<name>.md when the declaration omits it.
	Spec string `yaml:"spec"`
}

// Document is one parsed context document.
type Document struct {
	// Path is project-relative, slash-separated.
	Path string

	// Title is the first heading, falling back to the filename stem.
	Title string

	// Keywords come from an optional "Tags:" line in the document head.
	Keywords []string

	// VersionTag is the freshness marker found in the document head,
	// empty when the document carries none.
	VersionTag string

	// HasReferences reports whether the document declares a formal
	// References section. A document without one is valid but cannot be
	// checked for cross-reference accuracy.
	HasReferences bool

	// SectionRefs are document paths listed in the References section.
	SectionRefs []string

	// SourceRefs are source-file paths listed in the References section.
	SourceRefs []string

	// ProseRefs are document paths mentioned in prose outside the
	// References section. They carry weaker intent than SectionRefs.
	ProseRefs []string

	// Lines is the full document body, kept so that keyword search does
	// not re-read the filesystem on every query.
	Lines []string
}

// Ref is one extracted cross-reference with its source line for diagnostics.
type Ref struct {
	Target string
	Line   int
}

// Constitution is the root of the cross-reference graph.
type Constitution struct {
	// Path is project-relative.
	Path string

	// Found reports whether the file existed on disk at load time.
	Found bool

	// DocRefs are document paths mentioned anywhere in the constitution.
	DocRefs []Ref

	// AgentRefs are agent names extracted from the trigger table.
	AgentRefs []Ref
}

// Corpus is the immutable, fully loaded knowledge corpus.
type Corpus struct {
	// Root is the absolute project root the corpus was loaded from.
	Root string

	// SourceRoot is the project-relative directory that source-file
	// references resolve against.
	SourceRoot string

	Subsystems   []Subsystem
	Documents    []Document
	Agents       []Agent
	Constitution Constitution
}

// LoadError records one malformed or unreadable corpus entry. Load errors
// are collected and the offending entry skipped — a half-available registry
// is more useful during interactive use than none.
type LoadError struct {
	Source string
	Reason string
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}
