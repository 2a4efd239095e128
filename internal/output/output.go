package output

import (
	"fmt"
	"io"

	"github.com/dshills/pompatch/internal/batch"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *batch.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to w in the given format.
func WriteReport(w io.Writer, report *batch.Report, format string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(w, report)
}
