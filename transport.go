package taskfarm

import (
	"context"
	"fmt"
)

// transport owns the channels connecting the coordinator to the worker pool.
//
// Contract (explicit, not assumed):
//   - Delivery is reliable: a sent message is eventually received unless the
//     run is abandoned.
//   - Order is FIFO per sender-direction pair: a worker receives its
//     assignments in the order the coordinator sent them, and the
//     coordinator receives a given worker's results in the order sent.
//   - There is no ordering guarantee across different workers; receive
//     returns the next completed result from whichever worker finished
//     first. This any-source receive is what makes the scheduling policy
//     load-balancing.
//
// Channel ownership:
//   - One assignment channel per worker, written solely by the coordinator,
//     read solely by that worker. Capacity 1: since at most one assignment
//     per worker is ever outstanding, a send can never block, which gives
//     the coordinator fire-and-forget semantics without acknowledgement
//     tracking.
//   - One shared results channel, written by all workers, consumed solely by
//     the coordinator. Capacity equals the pool size (one in-flight result
//     per worker), so a worker's report never blocks either, even when the
//     run is abandoned mid-flight.
//
// The transport never closes its channels; the run ends by counting
// terminated workers, not by channel closure.
type transport[T, R any] struct {
	assignments []chan assignment[T] // worker ID w reads assignments[w-1]
	results     chan resultRecord[R]
}

func newTransport[T, R any](workers int) *transport[T, R] {
	as := make([]chan assignment[T], workers)
	for i := range as {
		as[i] = make(chan assignment[T], 1)
	}
	return &transport[T, R]{
		assignments: as,
		results:     make(chan resultRecord[R], workers),
	}
}

// send delivers an assignment to the given worker. It never blocks as long
// as the one-outstanding-assignment invariant holds; a blocked send would
// mean the invariant is broken, so it is allowed to (and will) deadlock
// loudly rather than drop the message.
func (tr *transport[T, R]) send(workerID int, a assignment[T]) {
	tr.assignments[workerID-1] <- a
}

// assignmentsFor returns the receive side of the given worker's assignment
// channel.
func (tr *transport[T, R]) assignmentsFor(workerID int) <-chan assignment[T] {
	return tr.assignments[workerID-1]
}

// report delivers one result record to the coordinator. Never blocks: the
// results channel has one slot per worker and each worker has at most one
// result in flight.
func (tr *transport[T, R]) report(rec resultRecord[R]) {
	tr.results <- rec
}

// receive blocks until the next result record from any worker is available,
// or the context is cancelled.
func (tr *transport[T, R]) receive(ctx context.Context) (resultRecord[R], error) {
	// Checked up front so a cancelled run cannot keep winning the select
	// race against results that arrive after cancellation.
	if err := ctx.Err(); err != nil {
		return resultRecord[R]{}, fmt.Errorf("%w: %w", ErrRunCancelled, err)
	}
	select {
	case rec := <-tr.results:
		return rec, nil
	case <-ctx.Done():
		return resultRecord[R]{}, fmt.Errorf("%w: %w", ErrRunCancelled, ctx.Err())
	}
}
