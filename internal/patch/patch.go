package patch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Status describes what happened to a single file.
type Status string

const (
	StatusPatched    Status = "patched"
	StatusUnchanged  Status = "unchanged"
	StatusMissing    Status = "missing"
	StatusWouldPatch Status = "would-patch"
)

// FileResult is the outcome of patching one file.
type FileResult struct {
	Path     string    `json:"path"`
	Status   Status    `json:"status"`
	Removals []Removal `json:"removals,omitempty"`
	Diff     string    `json:"diff,omitempty"`
}

// Changed reports whether the file was (or in a dry run would be) rewritten.
func (r FileResult) Changed() bool {
	return r.Status == StatusPatched || r.Status == StatusWouldPatch
}

// Options controls Patcher behavior.
type Options struct {
	// DryRun computes results without writing any file.
	DryRun bool
	// ShowDiff attaches and prints a before/after diff for changed files.
	ShowDiff bool
}

// Patcher applies a fixed rule set to files on disk.
type Patcher struct {
	rules []Rule
	out   io.Writer
	opts  Options
}

// New creates a Patcher. Progress lines are written to out; a nil out
// discards them. A nil rules slice selects DefaultRules.
func New(rules []Rule, out io.Writer, opts Options) *Patcher {
	if rules == nil {
		rules = DefaultRules()
	}
	if out == nil {
		out = io.Discard
	}
	return &Patcher{rules: rules, out: out, opts: opts}
}

// Rules returns the rules this Patcher applies.
func (p *Patcher) Rules() []Rule {
	return p.rules
}

// Patch rewrites the file at path and reports whether it changed.
// A missing file is reported and treated as unchanged.
func (p *Patcher) Patch(path string) (bool, error) {
	res, err := p.PatchFile(path)
	if err != nil {
		return false, err
	}
	return res.Changed(), nil
}

// PatchFile is Patch with the full per-file result.
func (p *Patcher) PatchFile(path string) (FileResult, error) {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(p.out, "File not found: %s\n", path)
			res.Status = StatusMissing
			return res, nil
		}
		return res, fmt.Errorf("reading %s: %w", path, err)
	}

	original := string(data)
	content, removals := Apply(original, p.rules)
	if content == original {
		res.Status = StatusUnchanged
		return res, nil
	}
	res.Removals = removals
	if p.opts.ShowDiff {
		res.Diff = Diff(path, original, content)
	}

	if p.opts.DryRun {
		res.Status = StatusWouldPatch
		fmt.Fprintf(p.out, "Would patch: %s\n", path)
	} else {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return res, fmt.Errorf("writing %s: %w", path, err)
		}
		res.Status = StatusPatched
		fmt.Fprintf(p.out, "Patched: %s\n", path)
	}
	if res.Diff != "" {
		fmt.Fprint(p.out, res.Diff)
	}
	return res, nil
}
