package corpus

import (
	"regexp"
	"strings"
)

// agentCellPattern matches the first cell of a trigger-table row when it
// holds a single backticked agent name, e.g. "| `combat-designer` | ... |".
var agentCellPattern = regexp.MustCompile("^\\|\\s*`([a-z0-9][a-z0-9-]*)`\\s*\\|")

// agentHeading matches section headings that introduce the agent trigger
// table. Restricting agent extraction to these sections keeps ordinary
// backticked words elsewhere in the constitution from being misread as
// agent names.
var agentHeading = regexp.MustCompile(`(?i)^#{1,6}\s+.*\bagents?\b`)

// tableRulePattern matches the separator row of a markdown table.
var tableRulePattern = regexp.MustCompile(`^\|[\s:|-]+\|?$`)

// parseConstitution extracts document and agent references from the
// constitution's text. Document references are any .md mention — the
// constitution is the root of the graph and every path it names is a claim
// that the document exists. Agent references only come from trigger-table
// rows inside an agent section.
func parseConstitution(relPath, content string) Constitution {
	c := Constitution{Path: relPath, Found: true}

	seenDocs := map[string]bool{}
	seenAgents := map[string]bool{}
	inAgentSection := false

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		if anyHeading.MatchString(trimmed) {
			inAgentSection = agentHeading.MatchString(trimmed)
		}

		for _, ref := range docPathPattern.FindAllString(line, -1) {
			if !seenDocs[ref] {
				seenDocs[ref] = true
				c.DocRefs = append(c.DocRefs, Ref{Target: ref, Line: lineNo})
			}
		}

		if !inAgentSection || tableRulePattern.MatchString(trimmed) {
			continue
		}
		if m := agentCellPattern.FindStringSubmatch(trimmed); m != nil {
			name := m[1]
			if !seenAgents[name] {
				seenAgents[name] = true
				c.AgentRefs = append(c.AgentRefs, Ref{Target: name, Line: lineNo})
			}
		}
	}

	return c
}
