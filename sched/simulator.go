// Round-robin simulator: a closed discrete-event loop over a ready queue and
// a fixed time quantum. Strictly deterministic, so repeated runs on identical
// input produce byte-identical reports.

package sched

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// TimeSlice is one contiguous stretch of CPU given to a process.
type TimeSlice struct {
	PID   int
	Start int
	Stop  int
}

// ProcessStats bundles the per-process timing results of a run.
type ProcessStats struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	FirstRunTime   int
	CompletionTime int
	WaitingTime    int
	ResponseTime   int
}

// Result holds everything a round-robin run produces: per-process stats in ID
// order, the dispatch history, and the two-line average report.
type Result struct {
	Processes []ProcessStats
	Gantt     []TimeSlice
	Report    Report
}

// Simulate runs round-robin scheduling over the given processes with a fixed
// quantum. It operates on its own private copies; the caller's slice is never
// mutated.
//
// Tie-break policy: processes arriving during a run interval (t0, t1] enter
// the ready queue before the preempted process is reinserted, so a returning
// process never jumps ahead of a same-tick arrival.
func Simulate(processes []Process, quantum int) (*Result, error) {
	if quantum < 1 {
		return nil, fmt.Errorf("%w: quantum length %d must be positive", ErrValidation, quantum)
	}
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: no processes to schedule", ErrValidation)
	}
	for i := range processes {
		if err := processes[i].Validate(); err != nil {
			return nil, err
		}
	}

	// Private copies, ordered by arrival time ascending with ties kept in
	// input order.
	pending := make([]*Process, len(processes))
	for i := range processes {
		p := processes[i]
		p.RemainingTime = p.BurstTime
		p.State = StateUnarrived
		p.FirstRunSet = false
		pending[i] = &p
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	var (
		queue ReadyQueue
		gantt []TimeSlice
		next  int // index of the next unadmitted process in pending
	)
	admitUpTo := func(t int) {
		for next < len(pending) && pending[next].ArrivalTime <= t {
			logrus.Debugf("<< Arrival: P%d at t=%d", pending[next].ID, t)
			queue.Enqueue(pending[next])
			next++
		}
	}

	clock := pending[0].ArrivalTime
	admitUpTo(clock)

	terminated := 0
	for terminated < len(pending) {
		if queue.Len() == 0 {
			// Idle: fast-forward to the next arrival.
			clock = pending[next].ArrivalTime
			logrus.Debugf("idle-skip to t=%d", clock)
			admitUpTo(clock)
		}

		p := queue.Pop()
		p.State = StateRunning
		p.MarkFirstRun(clock)

		slice := quantum
		if p.RemainingTime < slice {
			slice = p.RemainingTime
		}
		start := clock
		clock += slice
		p.RemainingTime -= slice
		gantt = append(gantt, TimeSlice{PID: p.ID, Start: start, Stop: clock})
		logrus.Debugf("dispatch P%d for [%d, %d), remaining=%d, queue=%s",
			p.ID, start, clock, p.RemainingTime, queue.String())

		// New arrivals during the slice queue ahead of the preempted process.
		admitUpTo(clock)
		if p.RemainingTime == 0 {
			p.MarkTerminated(clock)
			terminated++
		} else {
			queue.Enqueue(p)
		}
	}

	stats := make([]ProcessStats, len(pending))
	for i, p := range pending {
		stats[i] = ProcessStats{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			FirstRunTime:   p.FirstRunTime,
			CompletionTime: p.CompletionTime,
			WaitingTime:    p.WaitingTime(),
			ResponseTime:   p.ResponseTime(),
		}
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })

	return &Result{
		Processes: stats,
		Gantt:     gantt,
		Report:    NewReport(stats),
	}, nil
}
