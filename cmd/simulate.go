package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinlin24/rr-test-suite/sched"
)

var simulateTable bool

var simulateCmd = &cobra.Command{
	Use:   "simulate INPUT_FILE QUANTUM_LENGTH",
	Short: "Run the round-robin reference simulator over an input file",
	Long: "Simulate round-robin scheduling of the processes in INPUT_FILE under the " +
		"given time quantum and print the average waiting/response time report.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		quantum, err := strconv.Atoi(args[1])
		if err != nil {
			logrus.Fatalf("Invalid quantum length %q: must be an integer", args[1])
		}
		processes, err := sched.LoadInputFile(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		result, err := sched.Simulate(processes, quantum)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if simulateTable {
			sched.WriteTable(os.Stdout, result.Processes, result.Report)
		}
		fmt.Print(result.Report.String())
	},
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateTable, "table", false, "Also print a per-process schedule table")
	rootCmd.AddCommand(simulateCmd)
}
