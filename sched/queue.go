// Implements the ReadyQueue, which holds all processes eligible to run.
// Processes are enqueued on arrival and re-enqueued on quantum expiry.

package sched

import (
	"fmt"
	"strings"
)

// ReadyQueue is an ordered double-ended sequence of processes waiting for the
// CPU. The simulator exclusively owns and mutates it during a run; nothing
// else holds a reference to its contents.
type ReadyQueue struct {
	queue []*Process // FIFO order; head is the next process to run
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	p.State = StateReady
	rq.queue = append(rq.queue, p)
}

// PushFront inserts a process at the front of the queue, ahead of every
// waiting process. Provided for schedulers that requeue a preempted process
// before same-tick arrivals; plain round robin only uses Enqueue.
func (rq *ReadyQueue) PushFront(p *Process) {
	if p == nil {
		panic("PushFront: p must not be nil")
	}
	p.State = StateReady
	rq.queue = append([]*Process{p}, rq.queue...)
}

// Pop removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Pop() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	return head
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
