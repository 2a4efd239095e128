package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/pompatch/internal/batch"
	"github.com/dshills/pompatch/internal/patch"
)

// MarkdownWriter outputs a CI-summary-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *batch.Report) error {
	ew := &errWriter{w: w}

	ew.printf("## pompatch: %s\n\n", report.Project)
	if report.DryRun {
		ew.println("_Dry run: no files were written._\n")
	}

	ew.println("| File | Status | Removed |")
	ew.println("|------|--------|---------|")
	mdRow(ew, report.Root)
	for _, c := range report.Children {
		if c.Changed() {
			mdRow(ew, c)
		}
	}
	ew.printf("\n**%d of %d child pom.xml files patched.**\n", report.ChildrenPatched, report.ChildrenTotal)

	for _, r := range append([]patch.FileResult{report.Root}, report.Children...) {
		if r.Diff == "" {
			continue
		}
		ew.printf("\n<details>\n<summary>%s</summary>\n\n```diff\n%s```\n\n</details>\n", r.Path, r.Diff)
	}
	return ew.err
}

func mdRow(ew *errWriter, r patch.FileResult) {
	ew.printf("| `%s` | %s | %s |\n", r.Path, r.Status, mdRemovals(r.Removals))
}

func mdRemovals(removals []patch.Removal) string {
	if len(removals) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(removals))
	for _, rm := range removals {
		parts = append(parts, fmt.Sprintf("%s x%d", rm.Rule, rm.Count))
	}
	return strings.Join(parts, ", ")
}
