package taskfarm

import "context"

// Compute is the expensive per-item computation being scheduled. It must be
// pure with respect to its output but may take arbitrarily long, and its
// latency may depend on the input value. The scheduler treats it as opaque.
type Compute[T, R any] func(ctx context.Context, in T) R

// Reference is the cheap counterpart of Compute, used only by Report.Verify
// to check results after the run. It must be pure, total, and fast. It never
// influences scheduling decisions.
type Reference[T, R any] func(in T) R

// WorkItem pairs one input value with its position in the original input
// sequence. The index places the eventual result back in input order.
// Immutable once created.
type WorkItem[T any] struct {
	Index int
	Value T
}

// assignmentKind distinguishes the two assignment variants. An explicit tag
// keeps the input domain unconstrained; there is no reserved sentinel value.
type assignmentKind uint8

const (
	assignWork assignmentKind = iota
	assignTerminate
)

// assignment is the coordinator-to-worker message: either one work item or
// the terminate signal. At most one assignment per worker is outstanding at
// any time.
type assignment[T any] struct {
	kind assignmentKind
	item WorkItem[T]
}

func workAssignment[T any](item WorkItem[T]) assignment[T] {
	return assignment[T]{kind: assignWork, item: item}
}

func terminateAssignment[T any]() assignment[T] {
	return assignment[T]{kind: assignTerminate}
}

func (a assignment[T]) terminate() bool { return a.kind == assignTerminate }

// resultRecord is the worker-to-coordinator message reporting one completed
// computation. The coordinator resolves the in-flight index from its own
// registry keyed by workerID; the index carried here is redundant and is
// cross-checked against the registry on receipt.
type resultRecord[R any] struct {
	workerID int
	index    int
	value    R
}

// TraceEntry records, for the item at Index, which worker computed it.
// The full trace is the coordinator-side audit log of the run.
type TraceEntry[T any] struct {
	Index    int
	Input    T
	WorkerID int
}
