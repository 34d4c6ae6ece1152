package taskfarm

import (
	"reflect"

	"github.com/google/uuid"
)

// Report is the outcome of one completed run: every result in input order,
// plus the audit trail needed to reconstruct who computed what.
type Report[T, R any] struct {
	// RunID identifies the run in logs and stored audit output.
	RunID uuid.UUID

	// Workers is the pool size the run was scheduled over.
	Workers int

	// Inputs is the original input sequence.
	Inputs []T

	// Results holds one computed value per input, in input order.
	Results []R

	// Trace is the coordinator-side audit log: for every index, the input
	// value and the worker it was assigned to.
	Trace []TraceEntry[T]

	// WorkerLogs is the worker-side audit log: for every worker ID, the
	// items it processed in completion order. Workers terminated at startup
	// have an empty log.
	WorkerLogs map[int][]WorkItem[T]
}

// Divergence describes one result that disagrees with the reference
// function.
type Divergence[T, R any] struct {
	Index int
	Input T
	Got   R
	Want  R
}

// Verify compares every result against reference and returns the
// divergences, in index order. An empty slice means the run checks out.
// Divergences are data, not errors: verification never fails the run.
// Values are compared with reflect.DeepEqual.
func (r *Report[T, R]) Verify(reference Reference[T, R]) []Divergence[T, R] {
	var out []Divergence[T, R]
	for i, in := range r.Inputs {
		want := reference(in)
		if !reflect.DeepEqual(r.Results[i], want) {
			out = append(out, Divergence[T, R]{Index: i, Input: in, Got: r.Results[i], Want: want})
		}
	}
	return out
}
