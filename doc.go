// Package taskfarm schedules a finite sequence of independent work items of
// unknown, variable per-item cost over a fixed pool of workers using a
// greedy, demand-driven policy: the coordinator keeps exactly one item
// outstanding per worker and always hands the next unassigned item to
// whichever worker reports back first. Fast workers are therefore fed more
// items than slow ones, with no explicit load estimation.
//
// Construction
//   - New(ctx, opts ...Option): options-based constructor. WithWorkers is
//     mandatory; a farm cannot be built without knowing the pool size.
//   - Run(ctx, inputs, compute, opts ...Option): one-shot helper that
//     constructs a farm, runs it over inputs, and returns the Report.
//
// Defaults
// Unless overridden, a newly created instance uses:
//   - Logger: zap.NewNop()
//   - Metrics: metrics.NewNoopProvider()
//
// Scheduling contract
// Each input index in [0, N) is assigned to exactly one worker exactly once.
// A worker never holds more than one outstanding assignment, receives the
// terminate signal exactly once, and receives nothing after it. The run
// completes when the last active worker has been terminated, which happens
// iff every index has a recorded result.
//
// Termination is an explicit message variant, not an in-band sentinel value:
// an assignment is Work(item) | Terminate, so the input domain is
// unconstrained.
//
// Cancellation
// Run honors context cancellation: a cancelled context abandons the run and
// returns ErrRunCancelled wrapping the context error. This is an extension
// over the scheduling model, which otherwise has no timeouts: a computation
// that never returns stalls the run for as long as the context lives.
//
// Validation
// The expensive computation is treated as opaque. Correctness is checked
// after the fact via Report.Verify, which compares every result against a
// caller-supplied cheap reference function and returns the divergences
// without failing the run.
package taskfarm
