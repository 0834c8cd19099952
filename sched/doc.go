// Package sched provides the core model for the rr test suite.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - process.go: Process lifecycle (unarrived → ready → running → terminated)
//     and the waiting/response time identities
//   - queue.go: the ready queue the simulator owns
//   - simulator.go: the round-robin discrete-event loop
//
// The surrounding tooling lives in sub-packages:
//   - sched/solver/: parser for web-solver output and the solver list codec
//   - sched/testgen/: random test-case generation
//   - sched/check/: report comparison between simulator and solver
//
// Everything is single-threaded and deterministic: identical inputs produce
// byte-identical reports, which is what makes diffing them meaningful.
package sched
