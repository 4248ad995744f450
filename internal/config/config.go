// Package config locates and parses the scout.yaml project configuration.
//
// Every project that uses scout carries a scout.yaml at its root naming
// where the corpus lives: the constitution file, the registry of subsystem
// and agent declarations, the context-document directory, and the source
// root that document references are resolved against. All fields have
// defaults so an empty scout.yaml is a valid configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the project configuration file. Its presence
// marks the project root.
const ConfigFile = "scout.yaml"

// Config describes where the corpus lives, relative to the project root.
type Config struct {
	// Constitution is the always-loaded top-level conventions file that
	// anchors the cross-reference graph.
	Constitution string `yaml:"constitution"`

	// Registry is the YAML file declaring subsystems and agents.
	Registry string `yaml:"registry"`

	// ContextDir holds the on-demand context documents.
	ContextDir string `yaml:"context_dir"`

	// DocPatterns are glob patterns (doublestar syntax) selecting context
	// documents under ContextDir.
	DocPatterns []string `yaml:"doc_patterns"`

	// AgentsDir holds one spec file per agent, named <agent>.md.
	AgentsDir string `yaml:"agents_dir"`

	// SourceRoot is the directory source-file references resolve against.
	SourceRoot string `yaml:"source_root"`
}

// Default returns the configuration used when scout.yaml is empty or a
// field is unset.
func Default() *Config {
	return &Config{
		Constitution: "CONSTITUTION.md",
		Registry:     filepath.Join(".scout", "registry.yaml"),
		ContextDir:   filepath.Join(".scout", "context"),
		DocPatterns:  []string{"**/*.md"},
		AgentsDir:    filepath.Join(".scout", "agents"),
		SourceRoot:   ".",
	}
}

// Load reads scout.yaml from the given project root. A missing file yields
// the defaults; a present but unparsable file is an error.
func Load(projectRoot string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(projectRoot, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.merge(&file)
	return cfg, nil
}

// merge overlays non-empty fields from file onto cfg.
func (c *Config) merge(file *Config) {
	if file.Constitution != "" {
		c.Constitution = file.Constitution
	}
	if file.Registry != "" {
		c.Registry = file.Registry
	}
	if file.ContextDir != "" {
		c.ContextDir = file.ContextDir
	}
	if len(file.DocPatterns) > 0 {
		c.DocPatterns = file.DocPatterns
	}
	if file.AgentsDir != "" {
		c.AgentsDir = file.AgentsDir
	}
	if file.SourceRoot != "" {
		c.SourceRoot = file.SourceRoot
	}
}

// FindRoot walks up from the current working directory looking for a
// scout.yaml. If none is found, it returns cwd so that tools still work in
// projects that rely entirely on the defaults.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		candidate := filepath.Join(current, ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root without finding scout.yaml.
			// Return the original cwd — the caller decides what to do.
			return dir, nil
		}
		current = parent
	}
}
