// Package cli wires together the Cobra command tree for the pompatch binary.
//
// The root command runs the patch over the configured build tree; the
// rules, config and version subcommands inspect the fixed rule set and
// manage configuration.
package cli
