package relevance

import (
	"sort"
	"strings"

	"github.com/HendryAvila/scout/internal/corpus"
)

// Weights tunes the scoring formula. The exact weighting is deliberately a
// parameter: trigger phrases encode curated "this exact situation" signals
// and outweigh single-token overlap, but the ratio is not fixed by any
// external contract.
type Weights struct {
	// Keyword is the score per matched subsystem keyword.
	Keyword float64
	// NameBonus is added when a subsystem's full name appears in the task.
	NameBonus float64
	// Trigger scales each matched agent trigger phrase.
	Trigger float64
	// Description is the weak signal for task-token overlap with an
	// agent's description.
	Description float64

	// TopSubsystems bounds how many subsystems contribute files to
	// FindRelevantContext.
	TopSubsystems int
	// MaxFiles bounds the suggested file list.
	MaxFiles int
	// MaxAgents bounds the suggestions returned by SuggestAgent.
	MaxAgents int
}

// DefaultWeights mirrors the tuning the corpus was curated against.
func DefaultWeights() Weights {
	return Weights{
		Keyword:       1,
		NameBonus:     2,
		Trigger:       1,
		Description:   0.5,
		TopSubsystems: 3,
		MaxFiles:      10,
		MaxAgents:     3,
	}
}

// Matcher ranks corpus entries against task descriptions. It is a pure
// function of the corpus and weights; identical queries against an
// unchanged corpus always yield identical ordered results.
type Matcher struct {
	c *corpus.Corpus
	w Weights

	// triggerCount maps each trigger phrase to the number of agents that
	// declare it. Triggers shared by fewer agents are more informative.
	triggerCount map[string]int
}

// NewMatcher builds a Matcher over the corpus.
func NewMatcher(c *corpus.Corpus, w Weights) *Matcher {
	counts := map[string]int{}
	for _, a := range c.Agents {
		for _, t := range a.Triggers {
			counts[strings.ToLower(t)]++
		}
	}
	return &Matcher{c: c, w: w, triggerCount: counts}
}

// SubsystemMatch is one ranked subsystem.
type SubsystemMatch struct {
	Key         string
	Name        string
	Score       float64
	Matched     []string
	Files       []string
	Description string
}

// FileMatch is one ranked file suggestion.
type FileMatch struct {
	Path      string
	Score     float64
	Subsystem string
}

// RankSubsystems scores every subsystem against the task description and
// returns those with a positive score, highest first. Ties keep
// declaration order.
func (m *Matcher) RankSubsystems(task string) []SubsystemMatch {
	taskLower := strings.ToLower(task)
	tokens := tokenSet(task)

	var matches []SubsystemMatch
	for _, s := range m.c.Subsystems {
		score := 0.0
		var matched []string

		for _, kw := range s.Keywords {
			if matchPhrase(kw, taskLower, tokens) {
				score += m.w.Keyword
				matched = append(matched, kw)
			}
		}
		if name := strings.ToLower(s.Name); name != "" && strings.Contains(taskLower, name) {
			score += m.w.NameBonus
		}

		if score > 0 {
			matches = append(matches, SubsystemMatch{
				Key:         s.Key,
				Name:        s.Name,
				Score:       score,
				Matched:     matched,
				Files:       s.Files,
				Description: s.Description,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FindRelevantContext returns the deduplicated file lists of the
// top-scoring subsystems, each file carrying its subsystem's score. A
// task matching nothing returns an empty list — "no relevant context"
// is a normal outcome, not a failure.
func (m *Matcher) FindRelevantContext(task string) []FileMatch {
	ranked := m.RankSubsystems(task)
	if len(ranked) > m.w.TopSubsystems {
		ranked = ranked[:m.w.TopSubsystems]
	}

	seen := map[string]bool{}
	var files []FileMatch
	for _, sub := range ranked {
		for _, f := range sub.Files {
			if seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, FileMatch{Path: f, Score: sub.Score, Subsystem: sub.Key})
			if len(files) == m.w.MaxFiles {
				return files
			}
		}
	}
	return files
}

// AgentMatch is one ranked agent suggestion.
type AgentMatch struct {
	Name        string
	Description string
	Model       string
	Score       float64
	// Matched lists the trigger phrases that fired, as the rationale for
	// the suggestion.
	Matched []string
}

// Suggestion is the result of SuggestAgent.
type Suggestion struct {
	Matches    []AgentMatch
	Confidence string
	// Disambiguation is set when the two top agents are tied.
	Disambiguation string
}

// Recommended returns the top agent name, or "" when nothing matched.
func (s Suggestion) Recommended() string {
	if len(s.Matches) == 0 {
		return ""
	}
	return s.Matches[0].Name
}

// Confidence tiers for the top score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNone   = "none"
)

// SuggestAgent scores every registered agent against the task description.
// A trigger phrase contributes its word count scaled by a uniqueness bonus
// (phrases declared by fewer agents count for more); token overlap with
// the description is a weak additional signal.
func (m *Matcher) SuggestAgent(task string) Suggestion {
	taskLower := strings.ToLower(task)
	tokens := tokenSet(task)

	var matches []AgentMatch
	for _, a := range m.c.Agents {
		score := 0.0
		var matched []string

		for _, trigger := range a.Triggers {
			t := strings.ToLower(trigger)
			if !matchPhrase(t, taskLower, tokens) {
				continue
			}
			base := float64(len(strings.Fields(t)))
			uniqueness := 1.0 / float64(m.triggerCount[t])
			score += m.w.Trigger * base * (1.0 + uniqueness)
			matched = append(matched, trigger)
		}

		if descriptionOverlap(a.Description, tokens) {
			score += m.w.Description
		}

		if score > 0 {
			matches = append(matches, AgentMatch{
				Name:        a.Name,
				Description: a.Description,
				Model:       a.Model,
				Score:       score,
				Matched:     matched,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	s := Suggestion{Confidence: ConfidenceNone}
	if len(matches) >= 2 && matches[0].Score == matches[1].Score {
		var tied []string
		for _, am := range matches {
			if am.Score == matches[0].Score {
				tied = append(tied, am.Name)
			}
		}
		s.Disambiguation = "Tied between " + strings.Join(tied, ", ") + ". Check which files the task touches to decide."
	}
	if len(matches) > m.w.MaxAgents {
		matches = matches[:m.w.MaxAgents]
	}
	s.Matches = matches

	if len(matches) > 0 {
		switch top := matches[0].Score; {
		case top >= 4:
			s.Confidence = ConfidenceHigh
		case top >= 2:
			s.Confidence = ConfidenceMedium
		case top >= 1:
			s.Confidence = ConfidenceLow
		}
	}
	return s
}

// matchPhrase reports whether phrase occurs in the task. Single words must
// match a whole token; multi-word phrases match as substrings so word
// order is preserved.
func matchPhrase(phrase, taskLower string, tokens map[string]bool) bool {
	if strings.ContainsRune(phrase, ' ') {
		return strings.Contains(taskLower, phrase)
	}
	return tokens[phrase]
}

// descriptionOverlap reports whether any substantial task token appears in
// the description text.
func descriptionOverlap(description string, tokens map[string]bool) bool {
	desc := strings.ToLower(description)
	for t := range tokens {
		if len(t) > 3 && strings.Contains(desc, t) {
			return true
		}
	}
	return false
}
