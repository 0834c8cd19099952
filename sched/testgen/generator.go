// Random test-case generation. A generated case is just a process list whose
// arrival and burst times are drawn uniformly from configurable inclusive
// ranges; deterministic given the same injected RNG.

package testgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vinlin24/rr-test-suite/sched"
)

// Range is an inclusive integer interval written as "MIN-MAX" on the CLI.
type Range struct {
	Min int
	Max int
}

// ParseRange parses a "MIN-MAX" bounds string.
func ParseRange(s string) (Range, error) {
	lower, upper, found := strings.Cut(s, "-")
	if !found {
		return Range{}, fmt.Errorf("%w: bounds %q should be of the form MIN-MAX", sched.ErrParse, s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(lower))
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid lower bound %q in %q", sched.ErrParse, lower, s)
	}
	max, err := strconv.Atoi(strings.TrimSpace(upper))
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid upper bound %q in %q", sched.ErrParse, upper, s)
	}
	return Range{Min: min, Max: max}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Config holds the knobs for one generated test case.
type Config struct {
	N       int   // number of processes
	Arrival Range // inclusive bounds for arrival times
	Burst   Range // inclusive bounds for burst times
}

// Default returns the stock configuration: 4 processes, arrivals 0-20,
// bursts 1-20.
func Default() Config {
	return Config{
		N:       4,
		Arrival: Range{Min: 0, Max: 20},
		Burst:   Range{Min: 1, Max: 20},
	}
}

// Validate rejects configurations that cannot produce a valid scheduling
// input. Burst bounds must be strictly positive: a zero-burst process is not
// a schedulable entity.
func (c Config) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("%w: number of entries %d must be positive", sched.ErrValidation, c.N)
	}
	if c.Arrival.Min > c.Arrival.Max {
		return fmt.Errorf("%w: arrival bounds %s: upper must be >= lower", sched.ErrValidation, c.Arrival)
	}
	if c.Burst.Min > c.Burst.Max {
		return fmt.Errorf("%w: burst bounds %s: upper must be >= lower", sched.ErrValidation, c.Burst)
	}
	if c.Arrival.Min < 0 {
		return fmt.Errorf("%w: arrival bounds %s must be non-negative", sched.ErrValidation, c.Arrival)
	}
	if c.Burst.Min < 1 {
		return fmt.Errorf("%w: burst bounds %s must be strictly positive", sched.ErrValidation, c.Burst)
	}
	return nil
}

// Generate draws a process list from the configured ranges. IDs are assigned
// 1..N in generation order.
func Generate(cfg Config, rng *rand.Rand) ([]sched.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	processes := make([]sched.Process, cfg.N)
	for i := range processes {
		arrival := uniform(rng, cfg.Arrival)
		burst := uniform(rng, cfg.Burst)
		processes[i] = sched.Process{
			ID:            i + 1,
			ArrivalTime:   arrival,
			BurstTime:     burst,
			RemainingTime: burst,
			State:         sched.StateUnarrived,
		}
	}
	return processes, nil
}

// uniform draws from an inclusive range.
func uniform(rng *rand.Rand, r Range) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
