package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dshills/pompatch/internal/patch"
)

// Report summarizes one run.
type Report struct {
	Project         string             `json:"project"`
	RootFile        string             `json:"rootFile"`
	ChildGlob       string             `json:"childGlob"`
	DryRun          bool               `json:"dryRun"`
	Root            patch.FileResult   `json:"root"`
	Children        []patch.FileResult `json:"children"`
	ChildrenTotal   int                `json:"childrenTotal"`
	ChildrenPatched int                `json:"childrenPatched"`
}

// RootChanged reports whether the root file was patched.
func (r *Report) RootChanged() bool {
	return r.Root.Changed()
}

// Driver patches a root file and its glob-matched children.
type Driver struct {
	Project   string
	RootFile  string
	ChildGlob string
	DryRun    bool
	Patcher   *patch.Patcher
	Out       io.Writer
}

// Run patches the root file, then every child in glob order, strictly
// sequentially. The first unexpected I/O error aborts the run and is
// returned together with the partial report.
func (d *Driver) Run() (*Report, error) {
	out := d.Out
	if out == nil {
		out = io.Discard
	}
	report := &Report{
		Project:   d.Project,
		RootFile:  d.RootFile,
		ChildGlob: d.ChildGlob,
		DryRun:    d.DryRun,
		Children:  []patch.FileResult{},
	}

	fmt.Fprintf(out, "=== Applying patches to %s ===\n", d.Project)

	root, err := d.Patcher.PatchFile(d.RootFile)
	if err != nil {
		return report, err
	}
	report.Root = root
	if root.Changed() {
		fmt.Fprintln(out, "Main pom.xml patched successfully")
	} else {
		fmt.Fprintln(out, "Main pom.xml - no changes needed or file not found")
	}

	children, err := filepath.Glob(d.ChildGlob)
	if err != nil {
		return report, fmt.Errorf("matching %q: %w", d.ChildGlob, err)
	}
	rootClean := filepath.Clean(d.RootFile)
	for _, path := range children {
		if filepath.Clean(path) == rootClean {
			continue
		}
		res, err := d.Patcher.PatchFile(path)
		if err != nil {
			return report, err
		}
		report.Children = append(report.Children, res)
		report.ChildrenTotal++
		if res.Changed() {
			report.ChildrenPatched++
		}
	}
	return report, nil
}
