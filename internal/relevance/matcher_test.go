package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/scout/internal/corpus"
)

func matcherCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Subsystems: []corpus.Subsystem{
			{
				Key:      "combat",
				Name:     "Combat",
				Keywords: []string{"enemy", "attack", "damage"},
				Files:    []string{".scout/context/combat.md", ".scout/context/enemies.md"},
			},
			{
				Key:      "networking",
				Name:     "Networking",
				Keywords: []string{"sync", "netcode"},
				Files:    []string{".scout/context/networking.md", ".scout/context/combat.md"},
			},
			{
				Key:      "rendering",
				Name:     "Rendering",
				Keywords: []string{"shader", "sprite"},
				Files:    []string{".scout/context/rendering.md"},
			},
		},
		Agents: []corpus.Agent{
			{
				Name:        "combat-designer",
				Description: "Designs enemies and combat encounters",
				Triggers:    []string{"enemy attack", "boss"},
			},
			{
				Name:        "net-reviewer",
				Description: "Reviews netcode changes",
				Triggers:    []string{"sync", "netcode"},
			},
			{
				Name:        "ui-designer",
				Description: "Menus and HUD layout",
				Triggers:    []string{"menu"},
			},
		},
	}
}

func TestRankSubsystems(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	ranked := m.RankSubsystems("add a ranged enemy attack")
	require.Len(t, ranked, 1)
	assert.Equal(t, "combat", ranked[0].Key)
	assert.Equal(t, 2.0, ranked[0].Score)
	assert.Equal(t, []string{"enemy", "attack"}, ranked[0].Matched)
}

func TestRankSubsystemsNameBonus(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	ranked := m.RankSubsystems("fix networking sync drift")
	require.Len(t, ranked, 1)
	assert.Equal(t, "networking", ranked[0].Key)
	// One keyword match plus the name bonus.
	assert.Equal(t, 3.0, ranked[0].Score)
}

func TestRankSubsystemsTiesKeepDeclarationOrder(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	ranked := m.RankSubsystems("enemy sprite")
	require.Len(t, ranked, 2)
	assert.Equal(t, "combat", ranked[0].Key)
	assert.Equal(t, "rendering", ranked[1].Key)
}

func TestFindRelevantContextDeduplicatesFiles(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	files := m.FindRelevantContext("enemy sync")
	require.Len(t, files, 3)
	paths := []string{files[0].Path, files[1].Path, files[2].Path}
	assert.Equal(t, []string{
		".scout/context/combat.md",
		".scout/context/enemies.md",
		".scout/context/networking.md",
	}, paths)
}

func TestFindRelevantContextNoMatch(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	assert.Empty(t, m.FindRelevantContext("write the quarterly report"))
}

func TestSuggestAgentTriggerPhrase(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	s := m.SuggestAgent("add a ranged enemy attack")
	assert.Equal(t, "combat-designer", s.Recommended())
	assert.Equal(t, ConfidenceHigh, s.Confidence)
	require.Len(t, s.Matches, 1)
	assert.Equal(t, []string{"enemy attack"}, s.Matches[0].Matched)
	assert.Empty(t, s.Disambiguation)
}

func TestSuggestAgentNoMatch(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	s := m.SuggestAgent("update the changelog")
	assert.Empty(t, s.Matches)
	assert.Equal(t, ConfidenceNone, s.Confidence)
	assert.Equal(t, "", s.Recommended())
}

func TestSuggestAgentSharedTriggerTie(t *testing.T) {
	c := &corpus.Corpus{
		Agents: []corpus.Agent{
			{Name: "level-designer", Triggers: []string{"spawn"}},
			{Name: "balance-reviewer", Triggers: []string{"spawn"}},
		},
	}
	m := NewMatcher(c, DefaultWeights())

	s := m.SuggestAgent("tune spawn timing")
	require.Len(t, s.Matches, 2)
	assert.Equal(t, s.Matches[0].Score, s.Matches[1].Score)
	assert.Contains(t, s.Disambiguation, "level-designer")
	assert.Contains(t, s.Disambiguation, "balance-reviewer")
	assert.Equal(t, ConfidenceLow, s.Confidence)
}

func TestSuggestAgentDeterministic(t *testing.T) {
	m := NewMatcher(matcherCorpus(), DefaultWeights())

	first := m.SuggestAgent("enemy attack with netcode sync")
	second := m.SuggestAgent("enemy attack with netcode sync")
	assert.Equal(t, first, second)
}
