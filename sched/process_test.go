package sched

import "testing"

func TestProcess_MarkFirstRun_SetOnce(t *testing.T) {
	// GIVEN a process dispatched at t=3
	p := &Process{ID: 1, ArrivalTime: 1, BurstTime: 5}
	p.MarkFirstRun(3)

	// WHEN it is dispatched again later
	p.MarkFirstRun(9)

	// THEN the first dispatch time is kept
	if p.FirstRunTime != 3 {
		t.Errorf("FirstRunTime: got %d, want 3", p.FirstRunTime)
	}
	if p.ResponseTime() != 2 {
		t.Errorf("ResponseTime: got %d, want 2", p.ResponseTime())
	}
}

func TestProcess_WaitingTime(t *testing.T) {
	// GIVEN a terminated process
	p := &Process{ID: 1, ArrivalTime: 2, BurstTime: 4}
	p.MarkTerminated(14)

	// THEN waiting time is completion - arrival - burst
	if p.WaitingTime() != 8 {
		t.Errorf("WaitingTime: got %d, want 8", p.WaitingTime())
	}
	if p.State != StateTerminated {
		t.Errorf("State: got %s, want %s", p.State, StateTerminated)
	}
}

func TestProcess_Validate(t *testing.T) {
	cases := []struct {
		name    string
		process Process
		valid   bool
	}{
		{"valid", Process{ID: 1, ArrivalTime: 0, BurstTime: 1}, true},
		{"zero id", Process{ID: 0, ArrivalTime: 0, BurstTime: 1}, false},
		{"negative arrival", Process{ID: 1, ArrivalTime: -1, BurstTime: 1}, false},
		{"zero burst", Process{ID: 1, ArrivalTime: 0, BurstTime: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.process.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate: unexpected error %v", err)
			}
			if !tc.valid && err == nil {
				t.Errorf("Validate: expected an error, got nil")
			}
		})
	}
}
