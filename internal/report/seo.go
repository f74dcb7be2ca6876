package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Status labels used in the summary table.
const (
	statusPassed = "passed"
	statusFailed = "failed"
)

// SEORun prints every target's findings, a summary table and the combined status line.
func (r *Reporter) SEORun(targets []Target) error {
	if r.format == FormatYAML {
		return r.encodeYAML(struct {
			Targets []Target `yaml:"targets"`
			OK      bool     `yaml:"ok"`
		}{Targets: targets, OK: ExitCode(targets...) == 0})
	}

	for _, target := range targets {
		r.printTarget(target)
	}

	r.renderSummary(targets)

	if ExitCode(targets...) == 0 {
		fmt.Fprintln(r.w, "\nAll validations passed successfully!")
	} else {
		fmt.Fprintln(r.w, "\nValidation completed with warnings/errors. Please review the output above.")
	}

	return nil
}

func (r *Reporter) printTarget(target Target) {
	fmt.Fprintf(r.w, "\nValidating %s...\n", target.Name)
	r.printLines("ERROR: ", target.Result.Errors)
	r.printLines("WARNING: ", target.Result.Warnings)
	if target.Summary != "" {
		fmt.Fprintln(r.w, target.Summary)
	}
	if target.OK {
		fmt.Fprintf(r.w, "%s validation successful!\n", target.Name)
	} else {
		fmt.Fprintf(r.w, "%s validation failed!\n", target.Name)
	}
}

func (r *Reporter) renderSummary(targets []Target) {
	fmt.Fprintln(r.w)

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Target", "Status", "Errors", "Warnings"})

	for _, target := range targets {
		status := statusPassed
		if !target.OK {
			status = statusFailed
		}
		t.AppendRow(table.Row{target.Name, status, len(target.Result.Errors), len(target.Result.Warnings)})
	}

	t.Render()
}
