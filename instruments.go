package taskfarm

import "github.com/ygrebnov/taskfarm/metrics"

// instruments bundles the instruments the farm records scheduling activity
// with. Instrument names are stable; providers may aggregate across runs.
type instruments struct {
	dispatched metrics.Counter       // work items handed to workers
	completed  metrics.Counter       // result records received
	terminated metrics.Counter       // terminate signals sent
	active     metrics.UpDownCounter // workers currently holding work
	duration   metrics.Histogram     // per-item compute duration, seconds
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		dispatched: p.Counter("taskfarm.items.dispatched",
			metrics.WithDescription("work items handed to workers"), metrics.WithUnit("1")),
		completed: p.Counter("taskfarm.items.completed",
			metrics.WithDescription("result records received by the coordinator"), metrics.WithUnit("1")),
		terminated: p.Counter("taskfarm.workers.terminated",
			metrics.WithDescription("terminate signals sent to workers"), metrics.WithUnit("1")),
		active: p.UpDownCounter("taskfarm.workers.active",
			metrics.WithDescription("workers currently holding an assignment"), metrics.WithUnit("1")),
		duration: p.Histogram("taskfarm.compute.duration",
			metrics.WithDescription("per-item compute duration"), metrics.WithUnit("seconds")),
	}
}
