package taskfarm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// coordinator owns the global schedule: the next unassigned index, the
// active-worker count, the worker registry, and the result slots. All of it
// is mutated exclusively inside run's control loop (single writer), so no
// locking is needed.
//
// The policy is greedy and demand-driven: never more than one item
// outstanding per worker, and the next unassigned item always goes to
// whichever worker reported back first. Workers finishing in arbitrary
// order and at arbitrary speed are handled by the any-source receive alone.
type coordinator[T, R any] struct {
	inputs []T
	tr     *transport[T, R]
	reg    *registry
	log    *zap.Logger
	ins    instruments

	// pending is the next unassigned index; monotonically increasing.
	pending int
	// active counts workers holding real work; monotonically decreasing
	// after the initial wave. Zero means the run is complete.
	active int

	results []R
	filled  []bool
}

func newCoordinator[T, R any](
	inputs []T, tr *transport[T, R], log *zap.Logger, ins instruments,
) *coordinator[T, R] {
	return &coordinator[T, R]{
		inputs:  inputs,
		tr:      tr,
		reg:     newRegistry(len(inputs)),
		log:     log,
		ins:     ins,
		results: make([]R, len(inputs)),
		filled:  make([]bool, len(inputs)),
	}
}

// run dispatches the initial wave, then serves the receive/redispatch loop
// until the last active worker has been terminated. Returns only after
// every index has a recorded result, or with an error on cancellation or a
// broken invariant.
func (c *coordinator[T, R]) run(ctx context.Context, workers int) error {
	if err := c.dispatchInitial(workers); err != nil {
		return err
	}

	for c.active > 0 {
		rec, err := c.tr.receive(ctx)
		if err != nil {
			return err
		}
		if err = c.record(rec); err != nil {
			return err
		}

		if c.pending < len(c.inputs) {
			if err = c.dispatch(rec.workerID); err != nil {
				return err
			}
		} else {
			c.terminate(rec.workerID)
			c.active--
			c.ins.active.Add(-1)
		}
	}
	return nil
}

// dispatchInitial assigns items 0..min(workers, N) to workers 1..; any
// worker left without an item is terminated immediately and never counted
// active.
func (c *coordinator[T, R]) dispatchInitial(workers int) error {
	wave := min(workers, len(c.inputs))
	for id := 1; id <= workers; id++ {
		if c.pending < wave {
			if err := c.dispatch(id); err != nil {
				return err
			}
			c.active++
			c.ins.active.Add(1)
		} else {
			c.terminate(id)
		}
	}
	return nil
}

// record stores the received result in its slot and clears the reporting
// worker's in-flight entry, cross-checking the record's index against the
// registry.
func (c *coordinator[T, R]) record(rec resultRecord[R]) error {
	index, err := c.reg.complete(rec.workerID)
	if err != nil {
		return err
	}
	if index != rec.index {
		return fmt.Errorf("%w: worker %d reported index %d while assigned %d",
			ErrScheduleCorrupted, rec.workerID, rec.index, index)
	}
	if c.filled[index] {
		return fmt.Errorf("%w: duplicate result for index %d", ErrScheduleCorrupted, index)
	}
	c.results[index] = rec.value
	c.filled[index] = true
	c.ins.completed.Add(1)
	c.log.Debug("result received", zap.Int("worker", rec.workerID), zap.Int("index", index))
	return nil
}

// dispatch hands the item at pending to the given worker and advances the
// cursor.
func (c *coordinator[T, R]) dispatch(workerID int) error {
	index := c.pending
	if err := c.reg.assign(workerID, index); err != nil {
		return err
	}
	c.tr.send(workerID, workAssignment(WorkItem[T]{Index: index, Value: c.inputs[index]}))
	c.pending++
	c.ins.dispatched.Add(1)
	c.log.Debug("item dispatched", zap.Int("worker", workerID), zap.Int("index", index))
	return nil
}

// terminate sends the terminate variant to the given worker. The worker
// receives nothing after it.
func (c *coordinator[T, R]) terminate(workerID int) {
	c.tr.send(workerID, terminateAssignment[T]())
	c.ins.terminated.Add(1)
	c.log.Debug("worker terminated", zap.Int("worker", workerID))
}

// trace assembles the coordinator-side audit log: for every index, the input
// value and the worker that computed it.
func (c *coordinator[T, R]) trace() []TraceEntry[T] {
	entries := make([]TraceEntry[T], 0, len(c.inputs))
	for i, in := range c.inputs {
		w, _ := c.reg.assignedWorker(i)
		entries = append(entries, TraceEntry[T]{Index: i, Input: in, WorkerID: w})
	}
	return entries
}
