package sched

import "testing"

func TestReadyQueue_Pop_ReturnsInFIFOOrder(t *testing.T) {
	// GIVEN a queue with processes [1, 2, 3]
	rq := &ReadyQueue{}
	p1 := &Process{ID: 1}
	p2 := &Process{ID: 2}
	p3 := &Process{ID: 3}
	rq.Enqueue(p1)
	rq.Enqueue(p2)
	rq.Enqueue(p3)

	// WHEN all processes are popped
	got := []*Process{rq.Pop(), rq.Pop(), rq.Pop()}

	// THEN they come out in insertion order
	want := []*Process{p1, p2, p3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop order[%d]: got P%d, want P%d", i, got[i].ID, want[i].ID)
		}
	}
	if rq.Len() != 0 {
		t.Errorf("queue should be empty after popping all, got Len() = %d", rq.Len())
	}
}

func TestReadyQueue_Pop_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	rq := &ReadyQueue{}

	// WHEN Pop() is called
	got := rq.Pop()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Pop on empty queue: got %v, want nil", got)
	}
}

func TestReadyQueue_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with one process
	rq := &ReadyQueue{}
	p := &Process{ID: 7}
	rq.Enqueue(p)

	// WHEN Peek() is called
	got := rq.Peek()

	// THEN the head is returned and the queue is unchanged
	if got != p {
		t.Errorf("Peek: got %v, want P7", got)
	}
	if rq.Len() != 1 {
		t.Errorf("Peek modified queue length: got %d, want 1", rq.Len())
	}
}

func TestReadyQueue_PushFront_InsertsAheadOfWaiters(t *testing.T) {
	// GIVEN a queue with processes [1, 2]
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{ID: 1})
	rq.Enqueue(&Process{ID: 2})

	// WHEN a preempted process is pushed at the front
	rq.PushFront(&Process{ID: 3})

	// THEN it is the next to run
	ids := make([]int, 0, 3)
	for rq.Len() > 0 {
		ids = append(ids, rq.Pop().ID)
	}
	want := []int{3, 1, 2}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("order[%d]: got P%d, want P%d", i, ids[i], want[i])
		}
	}
}

func TestReadyQueue_Enqueue_MarksReady(t *testing.T) {
	// GIVEN an unarrived process
	p := &Process{ID: 1, State: StateUnarrived}
	rq := &ReadyQueue{}

	// WHEN it is enqueued
	rq.Enqueue(p)

	// THEN its state reflects queue membership
	if p.State != StateReady {
		t.Errorf("state after Enqueue: got %s, want %s", p.State, StateReady)
	}
}

func TestReadyQueue_String(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(&Process{ID: 2})
	rq.Enqueue(&Process{ID: 5})
	if got, want := rq.String(), "[P2 P5]"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}
