package sched

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_String_TwoDecimalPlaces(t *testing.T) {
	r := Report{AvgWaiting: 7, AvgResponse: 2.75}
	assert.Equal(t, "Average waiting time: 7.00\nAverage response time: 2.75\n", r.String())
}

func TestNewReport_UnweightedAverages(t *testing.T) {
	stats := []ProcessStats{
		{ID: 1, WaitingTime: 8, ResponseTime: 0},
		{ID: 2, WaitingTime: 8, ResponseTime: 1},
		{ID: 3, WaitingTime: 5, ResponseTime: 5},
		{ID: 4, WaitingTime: 7, ResponseTime: 5},
	}
	r := NewReport(stats)
	assert.InDelta(t, 7.0, r.AvgWaiting, 1e-9)
	assert.InDelta(t, 2.75, r.AvgResponse, 1e-9)
}

func TestWriteTable_ContainsStatsAndAverages(t *testing.T) {
	stats := []ProcessStats{
		{ID: 1, ArrivalTime: 0, BurstTime: 7, FirstRunTime: 0, CompletionTime: 15, WaitingTime: 8, ResponseTime: 0},
		{ID: 2, ArrivalTime: 2, BurstTime: 4, FirstRunTime: 3, CompletionTime: 14, WaitingTime: 8, ResponseTime: 1},
	}
	var buf bytes.Buffer
	WriteTable(&buf, stats, NewReport(stats))

	out := buf.String()
	assert.Contains(t, out, "FIRST RUN")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "AVERAGE")
	assert.Contains(t, out, "8.00")
	assert.Contains(t, out, "0.50")
}
