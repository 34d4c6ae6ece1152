package taskfarm

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Farm schedules work over a fixed pool of workers. A Farm carries only
// configuration; all scheduling state lives inside a single Run invocation,
// so a Farm may be reused and Run is safe for concurrent use.
type Farm[T, R any] struct {
	// noCopy prevents accidental copying of the controller.
	nc noCopy

	config *config
	log    *zap.Logger
	ins    instruments
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence
// of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a new Farm using functional options. WithWorkers is mandatory;
// a pool without workers is reported here, before any dispatch is attempted.
func New[T, R any](_ context.Context, opts ...Option) (*Farm[T, R], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &Farm[T, R]{
		config: &cfg,
		log:    cfg.Logger,
		ins:    newInstruments(cfg.Metrics),
	}, nil
}

// Run distributes inputs over the pool and blocks until every input has a
// recorded result, then returns the Report.
//
// Lifecycle: spawn one goroutine per worker, run the coordinator loop in the
// calling goroutine, join the workers, assemble the report. The coordinator
// loop exits exactly when the last active worker has been terminated; there
// is no separate completion handshake.
//
// On context cancellation the run is abandoned: workers are unblocked via
// the context, in-flight computations are left to the compute function's own
// cancellation discipline, and ErrRunCancelled wrapping the context error is
// returned instead of a report.
func (f *Farm[T, R]) Run(ctx context.Context, inputs []T, compute Compute[T, R]) (*Report[T, R], error) {
	if compute == nil {
		return nil, ErrNilCompute
	}

	runID := uuid.New()
	log := f.log.With(zap.String("run", runID.String()))
	log.Debug("run started",
		zap.Int("items", len(inputs)), zap.Int("workers", f.config.Workers))

	// The run context cancels worker loops once Run returns on error paths;
	// on the normal path every worker has already exited via its terminate
	// signal and cancellation is a no-op.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr := newTransport[T, R](f.config.Workers)

	pool := make([]*worker[T, R], f.config.Workers)
	var wg sync.WaitGroup
	for i := range pool {
		w := newWorker[T, R](i+1, tr, compute, log, f.ins)
		pool[i] = w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx)
		}()
	}

	c := newCoordinator[T, R](inputs, tr, log, f.ins)
	runErr := c.run(ctx, f.config.Workers)

	cancel()
	wg.Wait()

	if runErr != nil {
		log.Debug("run abandoned", zap.Error(runErr))
		return nil, runErr
	}

	logs := make(map[int][]WorkItem[T], len(pool))
	for _, w := range pool {
		logs[w.id] = w.processed
	}

	log.Debug("run completed")
	return &Report[T, R]{
		RunID:      runID,
		Workers:    f.config.Workers,
		Inputs:     inputs,
		Results:    c.results,
		Trace:      c.trace(),
		WorkerLogs: logs,
	}, nil
}

// Run constructs a Farm from opts, distributes inputs over it, and returns
// the Report. One-shot counterpart of Farm.Run.
func Run[T, R any](
	ctx context.Context, inputs []T, compute Compute[T, R], opts ...Option,
) (*Report[T, R], error) {
	f, err := New[T, R](ctx, opts...)
	if err != nil {
		return nil, err
	}
	return f.Run(ctx, inputs, compute)
}
