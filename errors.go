package taskfarm

import "errors"

const Namespace = "taskfarm"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrNoWorkers     = errors.New(
		Namespace + ": worker pool must contain at least one worker",
	)
	ErrNilCompute   = errors.New(Namespace + ": compute function must not be nil")
	ErrRunCancelled = errors.New(Namespace + ": run cancelled")
	// ErrScheduleCorrupted signals a broken scheduling invariant (an index
	// assigned twice, a result from an idle worker). It indicates a bug, not
	// a recoverable condition.
	ErrScheduleCorrupted = errors.New(Namespace + ": schedule state corrupted")
)
