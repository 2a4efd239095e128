package cli

import (
	"fmt"
	"io"

	"github.com/dshills/pompatch/internal/batch"
	"github.com/dshills/pompatch/internal/config"
	"github.com/dshills/pompatch/internal/output"
	"github.com/dshills/pompatch/internal/patch"
	"github.com/spf13/cobra"
)

// Patch flags
var (
	flagRoot      string
	flagChildGlob string
	flagProject   string
	flagFormat    string
	flagDryRun    bool
	flagDiff      bool
)

func addPatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRoot, "root", "", "Root pom.xml path")
	cmd.Flags().StringVar(&flagChildGlob, "child-glob", "", "Glob for child pom.xml files (default: <root-dir>/*/pom.xml)")
	cmd.Flags().StringVar(&flagProject, "project", "", "Project name shown in banners")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report what would change without writing files")
	cmd.Flags().BoolVar(&flagDiff, "diff", false, "Print a diff for every changed file")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagRoot != "" {
		m["root"] = flagRoot
	}
	if flagChildGlob != "" {
		m["childGlob"] = flagChildGlob
	}
	if flagProject != "" {
		m["project"] = flagProject
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func runPatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Keep stdout clean for machine-readable formats.
	var progress io.Writer = stdout
	if cfg.Format != "text" {
		progress = stderr
	}

	driver := &batch.Driver{
		Project:   cfg.Project,
		RootFile:  cfg.Root,
		ChildGlob: cfg.ChildPattern(),
		DryRun:    flagDryRun,
		Patcher:   patch.New(patch.DefaultRules(), progress, patch.Options{DryRun: flagDryRun, ShowDiff: flagDiff}),
		Out:       progress,
	}

	report, err := driver.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if err := output.WriteReport(stdout, report, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}
