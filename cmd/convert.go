package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinlin24/rr-test-suite/sched"
	"github.com/vinlin24/rr-test-suite/sched/solver"
)

// --- rrsuite tolists ---

var toListsCmd = &cobra.Command{
	Use:   "tolists INPUT_FILE",
	Short: "Convert an input file to solver arrival/burst lists",
	Long: "Read an rr input file and emit two lines of space-separated integers " +
		"(arrival times, then burst times) for pasting into the online solver's " +
		"input fields.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		processes, err := sched.LoadInputFile(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		arrivals, bursts := solver.FormatLists(processes)
		fmt.Println(arrivals)
		fmt.Println(bursts)
	},
}

// --- rrsuite fromlists ---

var fromListsCmd = &cobra.Command{
	Use:   "fromlists 'ARRIVALS' 'BURSTS'",
	Short: "Convert solver arrival/burst lists to an input file",
	Long: "Build rr input-file text from two quoted space-separated integer lists, " +
		"assigning process IDs 1..N in list order. Output goes to stdout for " +
		"redirection into a file.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		processes, err := solver.ParseLists(args[0], args[1])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		fmt.Print(sched.FormatInputFile(processes))
	},
}

func init() {
	rootCmd.AddCommand(toListsCmd)
	rootCmd.AddCommand(fromListsCmd)
}
