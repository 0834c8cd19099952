package sched

import "errors"

// Error kinds shared by every tool in the suite. Callers wrap these with
// fmt.Errorf("%w: ...") so errors.Is can classify a failure while the message
// still carries file/line/token context.
var (
	// ErrUsage covers wrong argument count or shape.
	ErrUsage = errors.New("usage error")

	// ErrParse covers malformed numeric fields, mismatched record counts, and
	// unparseable solver text.
	ErrParse = errors.New("parse error")

	// ErrValidation covers structurally well-formed input with illegal values:
	// non-positive burst or quantum, negative arrival, mismatched list lengths.
	ErrValidation = errors.New("validation error")
)
