package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/scout/internal/corpus"
)

func plainRender(t *testing.T, r *Report) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	r.Render(&buf)
	return buf.String()
}

func TestRenderLineContract(t *testing.T) {
	r := &Report{}
	r.add(SeverityError, CategoryConstitutionDocs, "CONSTITUTION.md:12", "referenced document gone.md does not exist")
	r.add(SeverityWarning, CategoryFreshness, ".scout/context/old.md", "no version or last-verified marker in document head")

	out := plainRender(t, r)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Every category gets a header even when it found nothing.
	headers := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "→ Checking ") {
			headers++
		}
	}
	assert.Equal(t, len(Categories), headers)

	assert.Contains(t, out, "→ Checking constitution document references (1 issues)")
	assert.Contains(t, out, "  ERROR: CONSTITUTION.md:12: referenced document gone.md does not exist")
	assert.Contains(t, out, "  WARN: .scout/context/old.md: no version or last-verified marker in document head")
	assert.Contains(t, out, "Summary: 1 errors, 1 warnings")
}

func TestRenderCleanSummary(t *testing.T) {
	out := plainRender(t, &Report{})
	assert.Contains(t, out, "Summary: 0 errors, 0 warnings")
	assert.NotContains(t, out, "ERROR:")
	assert.NotContains(t, out, "WARN:")
}

func TestRenderLoadErrors(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	RenderLoadErrors(&buf, []corpus.LoadError{
		{Source: ".scout/registry.yaml#subsystems[1]", Reason: "subsystem declaration has no key"},
	})

	out := buf.String()
	require.Contains(t, out, "WARN: load: .scout/registry.yaml#subsystems[1]: subsystem declaration has no key")
}

func TestRenderLoadErrorsEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	RenderLoadErrors(&buf, nil)
	assert.Zero(t, buf.Len())
}
