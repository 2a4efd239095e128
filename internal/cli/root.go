package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "pompatch",
	Short: "Strip defunct plugin references from Maven pom.xml files",
	Long: "pompatch removes the trojanbug.plugins plugin repository and the " +
		"propertymapper-maven-plugin declaration from a root pom.xml and its " +
		"child modules before a build.",
	Args: cobra.NoArgs,
	RunE: runPatch,
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

func init() {
	addPatchFlags(rootCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Run executes the root command and returns an exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	exitCode = ExitSuccess
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pompatch version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pompatch version %s\n", version)
	},
}
