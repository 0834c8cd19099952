// Report formatting shared by the simulator and the solver parser. The
// two-line average summary is the diffable contract between the two tools, so
// both sides must render it byte-identically.

package sched

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Report is the two-line average summary.
type Report struct {
	AvgWaiting  float64
	AvgResponse float64
}

// NewReport computes the unweighted averages over per-process stats.
func NewReport(stats []ProcessStats) Report {
	var totalWaiting, totalResponse int
	for _, s := range stats {
		totalWaiting += s.WaitingTime
		totalResponse += s.ResponseTime
	}
	n := float64(len(stats))
	return Report{
		AvgWaiting:  float64(totalWaiting) / n,
		AvgResponse: float64(totalResponse) / n,
	}
}

// String renders the report exactly as a correct rr implementation prints it.
func (r Report) String() string {
	return fmt.Sprintf("Average waiting time: %.2f\nAverage response time: %.2f\n",
		r.AvgWaiting, r.AvgResponse)
}

// WriteTable renders a per-process schedule table with an Average footer.
func WriteTable(w io.Writer, stats []ProcessStats, report Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "First Run", "Completion", "Waiting", "Response"})
	for _, s := range stats {
		table.Append([]string{
			fmt.Sprint(s.ID),
			fmt.Sprint(s.ArrivalTime),
			fmt.Sprint(s.BurstTime),
			fmt.Sprint(s.FirstRunTime),
			fmt.Sprint(s.CompletionTime),
			fmt.Sprint(s.WaitingTime),
			fmt.Sprint(s.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", report.AvgWaiting),
		fmt.Sprintf("%.2f", report.AvgResponse)})
	table.Render()
}
