package taskfarm

import "fmt"

// registry tracks which input index each worker is computing, in both
// directions: worker ID to in-flight index, and index to the worker it was
// assigned to. The index-to-worker side is kept for the whole run and
// becomes the audit trace; the worker-to-index side holds only the current
// in-flight item per worker.
//
// The registry is owned and mutated exclusively by the coordinator loop
// (single writer), so it needs no locking. Every mutation checks the
// scheduling invariants: no index assigned twice, no worker holding two
// outstanding assignments, no completion without an assignment. A violation
// is reported as ErrScheduleCorrupted — it means a bug, not bad input.
type registry struct {
	workerToIndex map[int]int // worker ID -> in-flight index
	indexToWorker []int       // index -> worker ID it was assigned to, -1 if never
}

func newRegistry(items int) *registry {
	ix := make([]int, items)
	for i := range ix {
		ix[i] = -1
	}
	return &registry{
		workerToIndex: make(map[int]int),
		indexToWorker: ix,
	}
}

// assign records that workerID is now computing the item at index.
func (g *registry) assign(workerID, index int) error {
	if cur, busy := g.workerToIndex[workerID]; busy {
		return fmt.Errorf("%w: worker %d already holds index %d, cannot assign %d",
			ErrScheduleCorrupted, workerID, cur, index)
	}
	if index < 0 || index >= len(g.indexToWorker) {
		return fmt.Errorf("%w: index %d out of range [0, %d)",
			ErrScheduleCorrupted, index, len(g.indexToWorker))
	}
	if w := g.indexToWorker[index]; w != -1 {
		return fmt.Errorf("%w: index %d already assigned to worker %d",
			ErrScheduleCorrupted, index, w)
	}
	g.workerToIndex[workerID] = index
	g.indexToWorker[index] = workerID
	return nil
}

// complete clears workerID's in-flight entry and returns the index it was
// computing. The index-to-worker side is left intact for the trace.
func (g *registry) complete(workerID int) (int, error) {
	index, busy := g.workerToIndex[workerID]
	if !busy {
		return 0, fmt.Errorf("%w: result from worker %d, which holds no assignment",
			ErrScheduleCorrupted, workerID)
	}
	delete(g.workerToIndex, workerID)
	return index, nil
}

// inFlight returns the number of workers currently holding an assignment.
func (g *registry) inFlight() int { return len(g.workerToIndex) }

// assignedWorker returns the worker the item at index was assigned to, or
// false if it never was.
func (g *registry) assignedWorker(index int) (int, bool) {
	if index < 0 || index >= len(g.indexToWorker) || g.indexToWorker[index] == -1 {
		return 0, false
	}
	return g.indexToWorker[index], true
}
