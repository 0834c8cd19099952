// Tolerant parser for the text a browser produces when the whole page of the
// online process scheduling solver (https://boonsuen.com/process-scheduling-solver)
// is selected and copy-pasted into a file.
//
// The paste has three regions of interest: an optional "Gantt Chart" header
// followed by the chart's cell and boundary-time tokens, a results table whose
// header line starts with "Job", and an optional trailing "Average" summary
// row. Token spacing and punctuation vary between browsers, so the chart is
// parsed as a classified token stream rather than a fixed grid.

package solver

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vinlin24/rr-test-suite/sched"
)

// Segment is one Gantt-chart cell: a process occupying the CPU for Duration
// units starting at Start. Input order is chronological order.
type Segment struct {
	PID      int
	Start    int
	Duration int
}

// End returns the time at which the segment's slice finishes.
func (s Segment) End() int {
	return s.Start + s.Duration
}

// ParseResult bundles everything recovered from a solver paste.
type ParseResult struct {
	Segments  []Segment
	Processes []sched.ProcessStats
	Report    sched.Report
}

var (
	// A line like "Round-Robin, RR" or "Shortest Job First, SJF": the solver
	// page's algorithm selector rendered as text.
	algorithmMarkerRe = regexp.MustCompile(`^[A-Za-z][A-Za-z -]*, [A-Z]{2,}$`)

	// The summary row under the table, e.g. "Average	28 / 4 = 7.00	...".
	// The divisor is the process count.
	averageRowRe = regexp.MustCompile(`^Average\s+(\d+)\s*/\s*(\d+)`)

	prefixedPIDRe = regexp.MustCompile(`^[Pp](\d+)$`)
	numericRe     = regexp.MustCompile(`^\d+$`)
	alphaRe       = regexp.MustCompile(`^[A-Za-z]+$`)
)

// chartCell is one slot of the Gantt chart before it is paired with its
// boundary times. Idle slots ("_") occupy a slot but name no process.
type chartCell struct {
	pid  int
	idle bool
}

// ParseFile reads and parses a solver paste from disk.
func ParseFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening solver output %s: %w", path, err)
	}
	result, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("solver output %s: %w", path, err)
	}
	return result, nil
}

// Parse extracts the Gantt segments and the results table from pasted solver
// text, then recomputes the waiting/response statistics independently of the
// numbers printed in the table. Any token it cannot place is an error; a
// silently wrong statistic would defeat the whole comparison workflow.
func Parse(text string) (*ParseResult, error) {
	lines := strings.Split(text, "\n")

	if algo, found := findAlgorithmMarker(lines); found && !strings.HasSuffix(algo, ", RR") {
		return nil, fmt.Errorf("%w: solver was run with %q, not Round-Robin", sched.ErrParse, algo)
	}

	chartStart := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "Gantt Chart" {
			chartStart = i + 1
			break
		}
	}

	tableHeader := -1
	for i := chartStart; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) > 0 && fields[0] == "Job" {
			tableHeader = i
			break
		}
	}
	if tableHeader < 0 {
		return nil, fmt.Errorf("%w: could not find results table header (line starting with \"Job\")", sched.ErrParse)
	}

	tableEnd := len(lines)
	expectedCount := 0
	for i := tableHeader + 1; i < len(lines); i++ {
		if m := averageRowRe.FindStringSubmatch(strings.TrimSpace(lines[i])); m != nil {
			tableEnd = i
			expectedCount, _ = strconv.Atoi(m[2])
			break
		}
	}

	segments, err := parseChart(lines[chartStart:tableHeader], chartStart)
	if err != nil {
		return nil, err
	}
	arrivals, tableBursts, err := parseTable(lines[tableHeader+1:tableEnd], tableHeader+1, expectedCount)
	if err != nil {
		return nil, err
	}

	stats, err := deriveStats(segments, arrivals, tableBursts)
	if err != nil {
		return nil, err
	}
	if expectedCount > 0 && expectedCount != len(stats) {
		return nil, fmt.Errorf("%w: summary row says %d processes but chart shows %d",
			sched.ErrParse, expectedCount, len(stats))
	}

	return &ParseResult{
		Segments:  segments,
		Processes: stats,
		Report:    sched.NewReport(stats),
	}, nil
}

// findAlgorithmMarker scans for the solver page's algorithm selector line.
func findAlgorithmMarker(lines []string) (string, bool) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if algorithmMarkerRe.MatchString(trimmed) {
			return trimmed, true
		}
	}
	return "", false
}

// parseChart classifies the chart region's tokens into cells and boundary
// times, then pairs cell i with boundary interval [times[i], times[i+1]].
//
// Classification rules, inherited from the solver page's labeling scheme:
//   - "_" is an idle cell (the CPU had no ready process for that interval).
//   - "P7"-style tokens and single letters (A=1 .. Z=26) are process labels.
//   - Bare integers are boundary times, except that a value at or below the
//     last seen boundary cannot be a new boundary: equal means the chart
//     wrapped onto a new row (duplicate boundary, dropped), lower means the
//     page labeled the 27th process onward with numerals starting at 10.
func parseChart(chartLines []string, offset int) ([]Segment, error) {
	var (
		cells []chartCell
		times []int
	)
	for i, raw := range chartLines {
		lineNo := offset + i + 1
		for _, token := range tokenize(raw) {
			switch {
			case token == "_":
				cells = append(cells, chartCell{idle: true})

			case prefixedPIDRe.MatchString(token),
				alphaRe.MatchString(token) && len(token) == 1:
				pid, err := labelToID(token)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				cells = append(cells, chartCell{pid: pid})

			case alphaRe.MatchString(token):
				// Page chrome ("Output", "Solve", ...) caught inside the
				// chart region of a whole-page paste. Labels are single
				// letters or P-prefixed, so plain words cannot be cells.
				logrus.Debugf("chart line %d: skipping page text %q", lineNo, token)

			case numericRe.MatchString(token):
				v, err := strconv.Atoi(token)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: integer %q out of range", sched.ErrParse, lineNo, token)
				}
				switch {
				case len(times) > 0 && v == times[len(times)-1]:
					// Chart wrapped onto a new row; the boundary repeats.
					logrus.Debugf("chart line %d: dropping wrap-around boundary %d", lineNo, v)
				case len(times) > 0 && v < times[len(times)-1]:
					pid, err := labelToID(token)
					if err != nil {
						return nil, fmt.Errorf("line %d: %w", lineNo, err)
					}
					cells = append(cells, chartCell{pid: pid})
				default:
					times = append(times, v)
				}

			default:
				return nil, fmt.Errorf("%w: line %d: unrecognized Gantt chart token %q",
					sched.ErrParse, lineNo, token)
			}
		}
	}

	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: Gantt chart region contains no process cells", sched.ErrParse)
	}
	if len(times) != len(cells)+1 {
		return nil, fmt.Errorf("%w: Gantt chart has %d cells but %d boundary times (want %d)",
			sched.ErrParse, len(cells), len(times), len(cells)+1)
	}

	var segments []Segment
	for i, cell := range cells {
		if cell.idle {
			continue
		}
		segments = append(segments, Segment{
			PID:      cell.pid,
			Start:    times[i],
			Duration: times[i+1] - times[i],
		})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: Gantt chart shows only idle time", sched.ErrParse)
	}
	return segments, nil
}

// parseTable extracts per-process arrival times (and burst times when the
// column survives the paste) from the results-table rows.
func parseTable(tableLines []string, offset, expectedCount int) (arrivals, bursts map[int]int, err error) {
	arrivals = make(map[int]int)
	bursts = make(map[int]int)
	rows := 0
	for i, raw := range tableLines {
		lineNo := offset + i + 1
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%w: line %d: table row %q needs at least a job label and arrival time",
				sched.ErrParse, lineNo, strings.TrimSpace(raw))
		}
		pid, err := labelToID(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		arrival, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: invalid arrival time %q for job %s",
				sched.ErrParse, lineNo, fields[1], fields[0])
		}
		if _, dup := arrivals[pid]; dup {
			return nil, nil, fmt.Errorf("%w: line %d: duplicate table row for job %s",
				sched.ErrParse, lineNo, fields[0])
		}
		arrivals[pid] = arrival
		if len(fields) >= 3 {
			if burst, err := strconv.Atoi(fields[2]); err == nil {
				bursts[pid] = burst
			}
		}
		rows++
	}
	if rows == 0 {
		return nil, nil, fmt.Errorf("%w: results table has no rows", sched.ErrParse)
	}
	if expectedCount > 0 && rows != expectedCount {
		return nil, nil, fmt.Errorf("%w: summary row says %d processes but table has %d rows",
			sched.ErrParse, expectedCount, rows)
	}
	return arrivals, bursts, nil
}

// deriveStats recomputes the timing statistics from the segments alone: first
// run is the start of a process's first segment, completion is the end of its
// last, burst is its summed durations. The table contributes only arrival
// times (not printed in the chart) plus a cross-check on bursts.
func deriveStats(segments []Segment, arrivals, tableBursts map[int]int) ([]sched.ProcessStats, error) {
	type accum struct {
		firstRun   int
		completion int
		burst      int
	}
	order := make([]int, 0, len(arrivals))
	byPID := make(map[int]*accum)
	for _, seg := range segments {
		a, seen := byPID[seg.PID]
		if !seen {
			a = &accum{firstRun: seg.Start}
			byPID[seg.PID] = a
			order = append(order, seg.PID)
		}
		a.completion = seg.End()
		a.burst += seg.Duration
	}

	stats := make([]sched.ProcessStats, 0, len(order))
	for _, pid := range order {
		a := byPID[pid]
		arrival, ok := arrivals[pid]
		if !ok {
			return nil, fmt.Errorf("%w: process %s appears in the Gantt chart but has no table row",
				sched.ErrParse, idToLabel(pid))
		}
		if tableBurst, ok := tableBursts[pid]; ok && tableBurst != a.burst {
			return nil, fmt.Errorf("%w: process %s runs for %d units in the chart but the table says burst %d",
				sched.ErrParse, idToLabel(pid), a.burst, tableBurst)
		}
		s := sched.ProcessStats{
			ID:             pid,
			ArrivalTime:    arrival,
			BurstTime:      a.burst,
			FirstRunTime:   a.firstRun,
			CompletionTime: a.completion,
			WaitingTime:    a.completion - arrival - a.burst,
			ResponseTime:   a.firstRun - arrival,
		}
		if s.ResponseTime < 0 || s.WaitingTime < 0 {
			return nil, fmt.Errorf("%w: process %s has arrival %d after its chart times (first run %d, completion %d)",
				sched.ErrParse, idToLabel(pid), arrival, a.firstRun, a.completion)
		}
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
	return stats, nil
}

// tokenize splits a chart line on whitespace and the separator punctuation
// different browsers sprinkle into the paste.
func tokenize(line string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '|', ',', ';', ':':
			return ' '
		}
		return r
	}, line)
	return strings.Fields(cleaned)
}

// labelToID maps a solver job label to the 1-based process ID the simulator
// uses. The page labels jobs A..Z, then "10", "11", ... for the 27th process
// onward; "P7"-style labels map directly.
func labelToID(token string) (int, error) {
	if m := prefixedPIDRe.FindStringSubmatch(token); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil || id < 1 {
			return 0, fmt.Errorf("%w: invalid process label %q", sched.ErrParse, token)
		}
		return id, nil
	}
	if len(token) == 1 && alphaRe.MatchString(token) {
		c := strings.ToUpper(token)[0]
		return int(c-'A') + 1, nil
	}
	if numericRe.MatchString(token) {
		v, err := strconv.Atoi(token)
		if err != nil || v < 10 {
			return 0, fmt.Errorf("%w: invalid numeric process label %q", sched.ErrParse, token)
		}
		return v - 10 + 27, nil
	}
	return 0, fmt.Errorf("%w: unrecognized process label %q", sched.ErrParse, token)
}

// idToLabel is the inverse of labelToID, for error messages.
func idToLabel(id int) string {
	if id >= 1 && id <= 26 {
		return string(rune('A' + id - 1))
	}
	return strconv.Itoa(id - 27 + 10)
}
