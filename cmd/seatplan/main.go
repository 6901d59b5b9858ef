// Command seatplan seats the guests of a plan file at its tables from the
// command line, using the same engine as the planner server.
//
// Usage:
//
//	seatplan assign wedding.yaml --companions across --output table
//	seatplan validate wedding.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/tableplanner/pkg/logging"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seatplan",
		Short:         "Assign guests to tables from a plan file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.Configure(cmd.ErrOrStderr(), level, "text")
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine decisions to stderr")

	root.AddCommand(newAssignCmd(), newValidateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
