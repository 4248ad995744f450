package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/scout/internal/config"
	"github.com/HendryAvila/scout/internal/corpus"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

func loadProject(t *testing.T, files map[string]string) *corpus.Corpus {
	t.Helper()
	root := writeProject(t, files)
	c, _, err := corpus.Load(root, config.Default())
	require.NoError(t, err)
	return c
}

// cleanProject is a fully consistent fixture: every reference resolves,
// every document carries a freshness marker, nothing is orphaned.
func cleanProject() map[string]string {
	return map[string]string{
		"CONSTITUTION.md": "# Rules\n\nRead .scout/context/networking.md and .scout/context/net-sync.md before netcode work.\n",
		".scout/registry.yaml": `subsystems:
  - key: networking
    keywords: [sync, netcode]
    files: [.scout/context/networking.md, .scout/context/net-sync.md]
`,
		".scout/context/networking.md": "# Networking\n\nVersion: 2\n\n## References\n- net-sync.md\n- src/a.py\n",
		".scout/context/net-sync.md":   "# Net Sync\n\nVersion: 1\n",
		"src/a.py":                     "pass\n",
	}
}

func TestRunCleanProject(t *testing.T) {
	c := loadProject(t, cleanProject())

	r := Run(c)
	assert.Equal(t, 0, r.Errors(), "issues: %v", r.Issues)
	assert.Equal(t, 0, r.Warnings(), "issues: %v", r.Issues)
	assert.Equal(t, 0, r.ExitCode())
}

func TestRunMissingSourceFileIsOneError(t *testing.T) {
	files := cleanProject()
	files[".scout/context/networking.md"] = "# Networking\n\nVersion: 2\n\n## References\n- net-sync.md\n- src/a.py\n- src/ghost.py\n"
	c := loadProject(t, files)

	r := Run(c)
	require.Equal(t, 1, r.Errors(), "issues: %v", r.Issues)
	assert.Equal(t, 0, r.Warnings(), "issues: %v", r.Issues)

	issues := r.ByCategory(CategoryDocSourceRefs)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, ".scout/context/networking.md", issues[0].Source)
	assert.Contains(t, issues[0].Message, "src/ghost.py")
	assert.Equal(t, 1, r.ExitCode())
}

func TestRunConstitutionBasenameRefs(t *testing.T) {
	files := cleanProject()
	files["CONSTITUTION.md"] = "# Rules\n\nRead networking.md and net-sync.md before netcode work.\n"
	c := loadProject(t, files)

	r := Run(c)
	assert.Equal(t, 0, r.Errors(), "issues: %v", r.Issues)
	// Basename references count for both the existence check and the
	// orphan check.
	assert.Empty(t, r.ByCategory(CategoryConstitutionDocs))
	assert.Empty(t, r.ByCategory(CategoryOrphans))
	assert.Equal(t, 0, r.ExitCode())
}

func TestRunReferencesWithProseAbbreviation(t *testing.T) {
	files := cleanProject()
	files[".scout/context/networking.md"] = "# Networking\n\nVersion: 2\n\n## References\n- net-sync.md\n- src/a.py (e.g. the retry loop)\n"
	c := loadProject(t, files)

	r := Run(c)
	assert.Equal(t, 0, r.Errors(), "issues: %v", r.Issues)
	assert.Empty(t, r.ByCategory(CategoryDocSourceRefs))
}

func TestRunMissingConstitution(t *testing.T) {
	files := cleanProject()
	delete(files, "CONSTITUTION.md")
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryConstitutionDocs)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "not found")
}

func TestRunDanglingConstitutionDocRef(t *testing.T) {
	files := cleanProject()
	files["CONSTITUTION.md"] += "\nAlso read .scout/context/missing.md.\n"
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryConstitutionDocs)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	// The source pinpoints the constitution line that made the claim.
	assert.Equal(t, "CONSTITUTION.md:5", issues[0].Source)
	assert.Contains(t, issues[0].Message, ".scout/context/missing.md")
}

func TestRunConstitutionAgents(t *testing.T) {
	files := cleanProject()
	files["CONSTITUTION.md"] += "\n## Agents\n\n| Agent | When |\n|-------|------|\n| `combat-designer` | enemy work |\n| `phantom` | never |\n"
	files[".scout/registry.yaml"] += `agents:
  - name: combat-designer
    triggers: [enemy]
`
	files[".scout/agents/combat-designer.md"] = "# Combat Designer\n"
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryConstitutionAgents)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `"phantom"`)
}

func TestRunAgentWithoutSpecFile(t *testing.T) {
	files := cleanProject()
	files["CONSTITUTION.md"] += "\n## Agents\n\n| Agent | When |\n|-------|------|\n| `combat-designer` | enemy work |\n"
	files[".scout/registry.yaml"] += `agents:
  - name: combat-designer
    triggers: [enemy]
`
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryConstitutionAgents)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, ".scout/agents/combat-designer.md")
}

func TestRunSectionRefErrorProseRefWarning(t *testing.T) {
	files := cleanProject()
	files[".scout/context/networking.md"] = "# Networking\n\nVersion: 2\n\nSee also casual-mention.md.\n\n## References\n- vanished.md\n"
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryDocCrossRefs)
	require.Len(t, issues, 2)

	bySeverity := map[Severity]Issue{}
	for _, i := range issues {
		bySeverity[i.Severity] = i
	}
	assert.Contains(t, bySeverity[SeverityError].Message, "vanished.md")
	assert.Contains(t, bySeverity[SeverityWarning].Message, "casual-mention.md")
}

func TestRunOrphanIsWarningNotError(t *testing.T) {
	files := cleanProject()
	files[".scout/context/abandoned.md"] = "# Abandoned\n\nVersion: 1\n"
	c := loadProject(t, files)

	r := Run(c)
	assert.Equal(t, 0, r.Errors(), "issues: %v", r.Issues)

	issues := r.ByCategory(CategoryOrphans)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, ".scout/context/abandoned.md", issues[0].Source)
	assert.Equal(t, 0, r.ExitCode())
}

func TestRunFreshnessWarning(t *testing.T) {
	files := cleanProject()
	files[".scout/context/net-sync.md"] = "# Net Sync\n\nNo marker here.\n"
	c := loadProject(t, files)

	r := Run(c)
	issues := r.ByCategory(CategoryFreshness)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, ".scout/context/net-sync.md", issues[0].Source)
}
