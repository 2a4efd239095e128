// Package output formats run reports for display or machine consumption.
//
// Three formats are supported:
//   - text     — closing tally and banner for terminal output (default)
//   - json     — full structured JSON report
//   - markdown — file table with collapsible diffs, for CI job summaries
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteReport] to write in one call.
package output
