package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinlin24/rr-test-suite/sched/check"
)

// Default filenames of the original workflow: the scheduler's test input and
// the Ctrl+A paste of the solver page.
const (
	defaultInputFile    = "processes.txt"
	defaultSolverOutput = "output.txt"
)

var checkCmd = &cobra.Command{
	Use:   "check QUANTUM_LENGTH [INPUT_FILE] [SOLVER_OUTPUT]",
	Short: "Diff the simulator's report against the web solver's",
	Long: "Run the simulator over INPUT_FILE (default " + defaultInputFile + ") with " +
		"the given quantum, parse SOLVER_OUTPUT (default " + defaultSolverOutput + "), " +
		"and compare the two reports. Prints a unified diff and exits non-zero " +
		"when they disagree.",
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		quantum, err := strconv.Atoi(args[0])
		if err != nil {
			logrus.Fatalf("Invalid quantum length %q: must be an integer", args[0])
		}
		inputPath := defaultInputFile
		solverPath := defaultSolverOutput
		if len(args) > 1 {
			inputPath = args[1]
		}
		if len(args) > 2 {
			solverPath = args[2]
		}

		outcome, err := check.Compare(inputPath, quantum, solverPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if outcome.Match {
			fmt.Print(outcome.SimReport)
			return
		}
		fmt.Fprintln(os.Stderr, "Reports disagree:")
		fmt.Print(outcome.Diff)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
