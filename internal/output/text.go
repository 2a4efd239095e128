package output

import (
	"fmt"
	"io"

	"github.com/dshills/pompatch/internal/batch"
)

// TextWriter prints the closing summary of a run. Per-file progress is
// streamed by the driver while the run is in flight.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *batch.Report) error {
	ew := &errWriter{w: w}
	if report.DryRun {
		ew.printf("Would patch %d child pom.xml files\n", report.ChildrenPatched)
		ew.println("=== Dry run complete, no files written ===")
		return ew.err
	}
	ew.printf("Patched %d child pom.xml files\n", report.ChildrenPatched)
	ew.println("=== Patching complete ===")
	return ew.err
}

// errWriter wraps an io.Writer and captures the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
