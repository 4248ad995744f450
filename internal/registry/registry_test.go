package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/HendryAvila/scout/internal/corpus"
)

func testCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Subsystems: []corpus.Subsystem{
			{
				Key:      "networking",
				Name:     "Networking",
				Keywords: []string{"sync", "netcode"},
				Files:    []string{".scout/context/networking.md", ".scout/context/net-sync.md"},
			},
			{
				Key:      "combat",
				Name:     "Combat",
				Keywords: []string{"enemy", "damage"},
				Files:    []string{".scout/context/combat.md"},
			},
		},
		Documents: []corpus.Document{
			{
				Path:     ".scout/context/combat.md",
				Title:    "Combat System",
				Keywords: []string{"enemy", "damage"},
				Lines:    []string{"# Combat System", "", "Enemies deal damage on contact.", "Bosses use phases."},
			},
			{
				Path:  ".scout/context/networking.md",
				Title: "Networking",
				Lines: []string{"# Networking", "", "State sync runs at 20hz."},
			},
		},
		Agents: []corpus.Agent{
			{Name: "combat-designer", Description: "Designs enemies", Triggers: []string{"enemy"}, Model: "sonnet"},
		},
	}
}

func TestListSubsystemsPreservesDeclarationOrder(t *testing.T) {
	r := New(testCorpus())

	subs := r.ListSubsystems()
	if len(subs) != 2 {
		t.Fatalf("got %d subsystems, want 2", len(subs))
	}
	if subs[0].Key != "networking" || subs[1].Key != "combat" {
		t.Errorf("order = [%s %s], want [networking combat]", subs[0].Key, subs[1].Key)
	}
}

func TestFilesForSubsystem(t *testing.T) {
	r := New(testCorpus())

	files, err := r.FilesForSubsystem("networking")
	if err != nil {
		t.Fatalf("FilesForSubsystem: %v", err)
	}
	if len(files) != 2 || files[0] != ".scout/context/networking.md" {
		t.Errorf("files = %v", files)
	}
}

func TestFilesForUnknownSubsystem(t *testing.T) {
	r := New(testCorpus())

	_, err := r.FilesForSubsystem("NETWORKING")
	if !errors.Is(err, ErrUnknownSubsystem) {
		t.Fatalf("err = %v, want ErrUnknownSubsystem for case mismatch", err)
	}
}

func TestSearchDocumentsEmptyKeyword(t *testing.T) {
	r := New(testCorpus())

	if got := r.SearchDocuments("   "); got != nil {
		t.Errorf("SearchDocuments(blank) = %v, want nil", got)
	}
}

func TestSearchDocumentsMatchesBodyWithSnippet(t *testing.T) {
	r := New(testCorpus())

	matches := r.SearchDocuments("phases")
	if len(matches) != 1 {
		t.Fatalf("matches = %v, want 1", matches)
	}
	m := matches[0]
	if m.Path != ".scout/context/combat.md" || m.Line != 4 {
		t.Errorf("match = %+v", m)
	}
	if !strings.Contains(m.Snippet, "Bosses use phases.") {
		t.Errorf("snippet missing hit line: %q", m.Snippet)
	}
	if !strings.Contains(m.Snippet, "Enemies deal damage") {
		t.Errorf("snippet missing context line: %q", m.Snippet)
	}
}

func TestSearchDocumentsMatchesTitleAndKeywords(t *testing.T) {
	r := New(testCorpus())

	// "damage" hits combat.md through its tags and its body.
	matches := r.SearchDocuments("DAMAGE")
	if len(matches) != 2 {
		t.Fatalf("matches = %v, want title hit plus body hit", matches)
	}
	if matches[0].Line != 1 || matches[0].Snippet != "Combat System" {
		t.Errorf("title hit = %+v", matches[0])
	}
}

func TestContextFiles(t *testing.T) {
	r := New(testCorpus())

	paths := r.ContextFiles()
	if len(paths) != 2 || paths[0] != ".scout/context/combat.md" {
		t.Errorf("paths = %v", paths)
	}
}

func TestListAgents(t *testing.T) {
	r := New(testCorpus())

	agents := r.ListAgents()
	if len(agents) != 1 {
		t.Fatalf("agents = %v, want 1", agents)
	}
	if agents[0].Name != "combat-designer" || agents[0].Model != "sonnet" {
		t.Errorf("agent = %+v", agents[0])
	}
}
