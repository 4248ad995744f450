package validate

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/HendryAvila/scout/internal/corpus"
)

// Render writes the line-oriented report: one header line per check
// category, one line per issue prefixed ERROR: or WARN:, and a final
// summary with total counts. Colors degrade to plain text automatically
// when the writer is not a terminal.
func (r *Report) Render(w io.Writer) {
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	for _, category := range Categories {
		issues := r.ByCategory(category)
		fmt.Fprintf(w, "%s Checking %s (%d issues)\n", cyan("→"), category, len(issues))
		for _, issue := range issues {
			prefix := yellow("WARN:")
			if issue.Severity == SeverityError {
				prefix = red("ERROR:")
			}
			fmt.Fprintf(w, "  %s %s: %s\n", prefix, issue.Source, issue.Message)
		}
	}

	errs, warns := r.Errors(), r.Warnings()
	if errs == 0 {
		fmt.Fprintf(w, "\n%s %d errors, %d warnings\n", green("Summary:"), errs, warns)
	} else {
		fmt.Fprintf(w, "\n%s %d errors, %d warnings\n", red("Summary:"), errs, warns)
	}
}

// RenderLoadErrors writes skip-and-continue load diagnostics ahead of the
// category report, so a half-loaded corpus is visible in the triage output.
func RenderLoadErrors(w io.Writer, loadErrs []corpus.LoadError) {
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, le := range loadErrs {
		fmt.Fprintf(w, "%s %s\n", yellow("WARN: load:"), le.Error())
	}
	if len(loadErrs) > 0 {
		fmt.Fprintln(w)
	}
}
