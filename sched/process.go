// Defines the Process struct that models one schedulable entry of an input
// file. Tracks arrival, burst, remaining work, and the timestamps needed for
// waiting/response time accounting.

package sched

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateUnarrived  ProcessState = "unarrived"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateTerminated ProcessState = "terminated"
)

// Process is one entry of an input file. IDs are positive and unique within a
// run, assigned 1-based in input order.
type Process struct {
	ID          int // Unique identifier for the process
	ArrivalTime int // Time unit at which the process becomes ready
	BurstTime   int // Total CPU time required

	RemainingTime  int          // CPU time still owed; 0 means finished
	State          ProcessState // unarrived, ready, running, terminated
	FirstRunSet    bool         // Tracks whether FirstRunTime has been set
	FirstRunTime   int          // Clock value of the first dispatch
	CompletionTime int          // Clock value at which RemainingTime reached 0
}

// MarkFirstRun records the first dispatch time. Set-once: later dispatches
// leave the recorded value alone.
func (p *Process) MarkFirstRun(t int) {
	if p.FirstRunSet {
		return
	}
	p.FirstRunSet = true
	p.FirstRunTime = t
}

// MarkTerminated records the completion time and finalizes the lifecycle.
func (p *Process) MarkTerminated(t int) {
	p.CompletionTime = t
	p.State = StateTerminated
}

// WaitingTime is completion - arrival - burst. Only meaningful once the
// process has terminated.
func (p *Process) WaitingTime() int {
	return p.CompletionTime - p.ArrivalTime - p.BurstTime
}

// ResponseTime is first run - arrival. Only meaningful once the process has
// been dispatched at least once.
func (p *Process) ResponseTime() int {
	return p.FirstRunTime - p.ArrivalTime
}

// Validate checks the static fields of a parsed process entry.
func (p *Process) Validate() error {
	if p.ID < 1 {
		return fmt.Errorf("%w: process ID %d must be positive", ErrValidation, p.ID)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d has negative arrival time %d", ErrValidation, p.ID, p.ArrivalTime)
	}
	if p.BurstTime < 1 {
		return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrValidation, p.ID, p.BurstTime)
	}
	return nil
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, State: %s, Arrival: %d, Burst: %d, Remaining: %d)",
		p.ID, p.State, p.ArrivalTime, p.BurstTime, p.RemainingTime)
}
