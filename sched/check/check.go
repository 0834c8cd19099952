// The comparison harness: run the simulator over an input file and the parser
// over the matching solver paste, then diff the two reports. A mismatch is a
// detected inequality, not a tool failure, so it is reported as a unified
// diff rather than an error.

package check

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/vinlin24/rr-test-suite/sched"
	"github.com/vinlin24/rr-test-suite/sched/solver"
)

// Outcome is the result of one comparison run.
type Outcome struct {
	SimReport    string // simulator's two-line report
	SolverReport string // parser's two-line report
	Match        bool
	Diff         string // unified diff, empty when Match
}

// Compare simulates inputPath under the given quantum, parses solverPath, and
// diffs the resulting reports. An error means one of the tools failed; an
// Outcome with Match == false means both ran and disagree.
func Compare(inputPath string, quantum int, solverPath string) (*Outcome, error) {
	processes, err := sched.LoadInputFile(inputPath)
	if err != nil {
		return nil, err
	}
	result, err := sched.Simulate(processes, quantum)
	if err != nil {
		return nil, fmt.Errorf("simulating %s: %w", inputPath, err)
	}

	parsed, err := solver.ParseFile(solverPath)
	if err != nil {
		return nil, err
	}

	simReport := result.Report.String()
	solverReport := parsed.Report.String()
	outcome := &Outcome{
		SimReport:    simReport,
		SolverReport: solverReport,
		Match:        simReport == solverReport,
	}
	if !outcome.Match {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(simReport),
			B:        difflib.SplitLines(solverReport),
			FromFile: "simulator",
			ToFile:   "solver",
			Context:  2,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering diff: %w", err)
		}
		outcome.Diff = diff
	}
	return outcome, nil
}
