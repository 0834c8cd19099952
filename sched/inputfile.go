// Codec for the rr input-file format:
//
//	<N>
//	<id>, <arrival_time>, <burst_time>
//	... (N lines)
//
// Whitespace around commas is insignificant.

package sched

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseInputFile reads the input-file format and returns the declared
// processes in file order. The declared count must match the number of record
// lines exactly and every record must validate.
func ParseInputFile(r io.Reader) ([]Process, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header line: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: empty input, expected process count on line 1", ErrParse)
	}
	header := strings.TrimSpace(scanner.Text())
	count, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: invalid process count %q", ErrParse, header)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: process count %d must be positive", ErrValidation, count)
	}

	processes := make([]Process, 0, count)
	seen := make(map[int]bool, count)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: line %d: duplicate process ID %d", ErrValidation, lineNo, p.ID)
		}
		seen[p.ID] = true
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading input: %v", ErrParse, err)
	}

	if len(processes) != count {
		return nil, fmt.Errorf("%w: header declares %d processes but file has %d records",
			ErrParse, count, len(processes))
	}
	return processes, nil
}

// parseRecord parses one "<id>, <arrival>, <burst>" line.
func parseRecord(line string) (Process, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Process{}, fmt.Errorf("%w: expected 3 comma-separated fields, got %d in %q",
			ErrParse, len(fields), line)
	}
	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Process{}, fmt.Errorf("%w: invalid integer %q in %q", ErrParse, strings.TrimSpace(f), line)
		}
		nums[i] = n
	}
	p := Process{
		ID:          nums[0],
		ArrivalTime: nums[1],
		BurstTime:   nums[2],
		State:       StateUnarrived,
	}
	p.RemainingTime = p.BurstTime
	if err := p.Validate(); err != nil {
		return Process{}, err
	}
	return p, nil
}

// LoadInputFile opens and parses an input file from disk.
func LoadInputFile(path string) ([]Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file
	processes, err := ParseInputFile(f)
	if err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}
	return processes, nil
}

// FormatInputFile renders processes back into input-file format, with the
// "id, arrival, burst" spacing the original test files use.
func FormatInputFile(processes []Process) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(processes)))
	for _, p := range processes {
		sb.WriteString(fmt.Sprintf("\n%d, %d, %d", p.ID, p.ArrivalTime, p.BurstTime))
	}
	sb.WriteString("\n")
	return sb.String()
}
