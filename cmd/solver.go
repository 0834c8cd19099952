package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinlin24/rr-test-suite/sched"
	"github.com/vinlin24/rr-test-suite/sched/solver"
)

var solverTable bool

var solverCmd = &cobra.Command{
	Use:   "solver SOLVER_OUTPUT_FILE",
	Short: "Recompute the averages from pasted web-solver output",
	Long: "Parse the Gantt chart and results table copy-pasted from the online " +
		"process scheduling solver and print the same two-line report the " +
		"simulator produces, recomputed independently from the chart.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := solver.ParseFile(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if solverTable {
			sched.WriteTable(os.Stdout, result.Processes, result.Report)
		}
		fmt.Print(result.Report.String())
	},
}

func init() {
	solverCmd.Flags().BoolVar(&solverTable, "table", false, "Also print a per-process schedule table")
	rootCmd.AddCommand(solverCmd)
}
