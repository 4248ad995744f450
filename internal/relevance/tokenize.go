// Package relevance ranks subsystems, documents, and agents by lexical
// overlap with a free-text task description. Matching is purely lexical —
// word tokens and curated trigger phrases — with no semantic layer.
package relevance

import "strings"

// Tokenize lowercases text, strips surrounding punctuation from each word,
// and drops stop words and fragments shorter than two characters.
func Tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	var tokens []string
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'()[]{}<>`*_-")
		if len(w) < 2 || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// tokenSet returns the tokens of text as a set for membership tests.
func tokenSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}

// stopWords are common words excluded from token matching.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"was": true, "one": true, "our": true, "out": true, "has": true,
	"its": true, "let": true, "may": true, "who": true, "did": true,
	"get": true, "how": true, "new": true, "now": true, "see": true,
	"way": true, "too": true, "use": true, "that": true, "with": true,
	"have": true, "this": true, "will": true, "your": true, "from": true,
	"they": true, "been": true, "each": true, "which": true, "their": true,
	"there": true, "would": true, "make": true, "like": true, "just": true,
	"over": true, "also": true, "into": true, "some": true, "then": true,
	"than": true, "when": true, "what": true, "should": true, "could": true,
	"please": true, "need": true, "want": true, "add": true,
}
