package corpus

import (
	"path"
	"regexp"
	"strings"
)

// Each reference kind gets its own small parser because each kind has a
// different false-positive profile: a path in a formal References section
// is a load-bearing claim, a .md mention in prose is a casual one, and the
// constitution's tables mix both documents and agent names.

// headLines is how far into a document the freshness marker and tag line
// are looked for.
const headLines = 10

// docPathPattern matches path-like tokens ending in .md. A leading dot is
// allowed so dotted directories like .scout/context keep their prefix.
var docPathPattern = regexp.MustCompile(`\.?[\w][\w./\-]*\.md`)

// sourcePathPattern matches path-like tokens with a file extension.
// Candidates still pass through isSourcePath, which keeps prose from
// producing phantom references.
var sourcePathPattern = regexp.MustCompile(`\.?[\w][\w./\-]*\.[A-Za-z]\w*`)

// versionPattern matches recognized freshness markers in a document head,
// e.g. "Version: 3", "Last verified: 2026-07-01", "> Last updated 2026-07".
var versionPattern = regexp.MustCompile(`(?i)^(?:>\s*)?(?:\*\*)?(version|last[ -]verified|last[ -]updated|revision)(?:\*\*)?\s*[:\s]\s*(\S.*)$`)

// tagsPattern matches the optional tag line in a document head.
var tagsPattern = regexp.MustCompile(`(?i)^(?:>\s*)?(?:\*\*)?(?:tags|keywords)(?:\*\*)?\s*:\s*(.+)$`)

// referencesHeading matches the heading that opens a formal References
// section at any level.
var referencesHeading = regexp.MustCompile(`(?i)^#{1,6}\s+references\b`)

// anyHeading matches any markdown heading line.
var anyHeading = regexp.MustCompile(`^#{1,6}\s`)

// parseDocument extracts the structured fields of one context document
// from its raw content. relPath is project-relative and slash-separated.
func parseDocument(relPath, content string) Document {
	lines := strings.Split(content, "\n")

	doc := Document{
		Path:  relPath,
		Title: strings.TrimSuffix(path.Base(relPath), ".md"),
		Lines: lines,
	}

	// Head: first heading becomes the title; freshness and tag markers
	// only count near the top, where a reader would look for them.
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if doc.Title == strings.TrimSuffix(path.Base(relPath), ".md") && strings.HasPrefix(trimmed, "# ") {
			doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
		if i >= headLines {
			break
		}
		if m := versionPattern.FindStringSubmatch(trimmed); m != nil && doc.VersionTag == "" {
			doc.VersionTag = strings.TrimSpace(m[2])
		}
		if m := tagsPattern.FindStringSubmatch(trimmed); m != nil && doc.Keywords == nil {
			for _, kw := range strings.Split(m[1], ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					doc.Keywords = append(doc.Keywords, strings.ToLower(kw))
				}
			}
		}
	}

	inReferences := false
	self := path.Base(relPath)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case referencesHeading.MatchString(trimmed):
			inReferences = true
			doc.HasReferences = true
			continue
		case inReferences && anyHeading.MatchString(trimmed):
			inReferences = false
		}

		if inReferences {
			docRefs, srcRefs := parseReferenceEntry(trimmed)
			doc.SectionRefs = appendUnique(doc.SectionRefs, docRefs...)
			doc.SourceRefs = appendUnique(doc.SourceRefs, srcRefs...)
			continue
		}

		// Outside the References section only .md mentions count, and a
		// document does not reference itself.
		for _, ref := range docPathPattern.FindAllString(line, -1) {
			if path.Base(ref) == self {
				continue
			}
			doc.ProseRefs = appendUnique(doc.ProseRefs, ref)
		}
	}

	return doc
}

// parseReferenceEntry splits the path tokens of one References-section line
// into document references and source-file references.
func parseReferenceEntry(line string) (docRefs, srcRefs []string) {
	for _, token := range sourcePathPattern.FindAllString(line, -1) {
		switch {
		case strings.HasSuffix(token, ".md"):
			docRefs = append(docRefs, token)
		case isSourcePath(token):
			srcRefs = append(srcRefs, token)
		}
	}
	return docRefs, srcRefs
}

// isSourcePath reports whether a matched token names a source file rather
// than a dotted abbreviation like "e.g" or "i.e". A bare filename needs a
// multi-letter extension; anything with a separator is a path.
func isSourcePath(token string) bool {
	if strings.Contains(token, "/") {
		return true
	}
	return len(path.Ext(token)) > 2
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
