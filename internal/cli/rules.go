package cli

import (
	"fmt"

	"github.com/dshills/pompatch/internal/patch"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the removal rules applied to each pom.xml",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for i, r := range patch.DefaultRules() {
			fmt.Fprintf(w, "%d. %s: %s\n", i+1, r.Name, r.Description)
			fmt.Fprintf(w, "   %s\n", r.Pattern.String())
		}
	},
}
