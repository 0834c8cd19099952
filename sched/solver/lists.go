// Codec for the solver list format: two whitespace-separated integer lists,
// arrival times then burst times, in process-ID order. This is the shape the
// web solver's input fields want, so the lists can be copy-pasted directly.

package solver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vinlin24/rr-test-suite/sched"
)

// ParseLists builds a process list from the two solver lists. IDs are
// assigned sequentially starting at 1. The lists must be the same non-zero
// length.
func ParseLists(arrivals, bursts string) ([]sched.Process, error) {
	arrivalFields := strings.Fields(arrivals)
	burstFields := strings.Fields(bursts)
	if len(arrivalFields) != len(burstFields) {
		return nil, fmt.Errorf("%w: arrival list has %d entries but burst list has %d",
			sched.ErrValidation, len(arrivalFields), len(burstFields))
	}
	if len(arrivalFields) == 0 {
		return nil, fmt.Errorf("%w: empty arrival and burst lists", sched.ErrValidation)
	}

	processes := make([]sched.Process, len(arrivalFields))
	for i := range arrivalFields {
		arrival, err := strconv.Atoi(arrivalFields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid arrival time %q", sched.ErrParse, arrivalFields[i])
		}
		burst, err := strconv.Atoi(burstFields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid burst time %q", sched.ErrParse, burstFields[i])
		}
		p := sched.Process{
			ID:            i + 1,
			ArrivalTime:   arrival,
			BurstTime:     burst,
			RemainingTime: burst,
			State:         sched.StateUnarrived,
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		processes[i] = p
	}
	return processes, nil
}

// FormatLists renders processes as the two solver lists, ordered by ID.
func FormatLists(processes []sched.Process) (arrivals, bursts string) {
	ordered := make([]sched.Process, len(processes))
	copy(ordered, processes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	arrivalFields := make([]string, len(ordered))
	burstFields := make([]string, len(ordered))
	for i, p := range ordered {
		arrivalFields[i] = strconv.Itoa(p.ArrivalTime)
		burstFields[i] = strconv.Itoa(p.BurstTime)
	}
	return strings.Join(arrivalFields, " "), strings.Join(burstFields, " ")
}
