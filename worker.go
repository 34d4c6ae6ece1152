package taskfarm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// worker is one member of the pool. It is stateless across iterations except
// for its identity and its processing log: block on the next assignment,
// run the computation, report the result tagged with its own ID, repeat.
// The terminate variant exits the loop; no acknowledgement is sent.
//
// A worker only ever reports results for items it was explicitly assigned,
// and exactly one result per assignment — both hold by construction of the
// loop. The processed log is written only by the worker's own goroutine and
// read only after the worker has exited (the run joins all workers before
// assembling the report).
type worker[T, R any] struct {
	id      int
	tr      *transport[T, R]
	compute Compute[T, R]
	log     *zap.Logger
	ins     instruments

	// processed accumulates the items this worker computed, in completion
	// order (the per-worker audit log).
	processed []WorkItem[T]
}

func newWorker[T, R any](
	id int, tr *transport[T, R], compute Compute[T, R], log *zap.Logger, ins instruments,
) *worker[T, R] {
	return &worker[T, R]{id: id, tr: tr, compute: compute, log: log, ins: ins}
}

// run executes the worker loop until terminated or the context is cancelled.
func (w *worker[T, R]) run(ctx context.Context) {
	w.log.Debug("worker started", zap.Int("worker", w.id))
	in := w.tr.assignmentsFor(w.id)

	for {
		var a assignment[T]
		select {
		case <-ctx.Done():
			w.log.Debug("worker abandoned", zap.Int("worker", w.id))
			return
		case a = <-in:
		}

		if a.terminate() {
			w.log.Debug("worker finished", zap.Int("worker", w.id))
			return
		}

		start := time.Now()
		value := w.compute(ctx, a.item.Value)
		w.ins.duration.Record(time.Since(start).Seconds())

		w.processed = append(w.processed, a.item)
		w.tr.report(resultRecord[R]{workerID: w.id, index: a.item.Index, value: value})
	}
}
