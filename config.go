package taskfarm

import (
	"go.uber.org/zap"

	"github.com/ygrebnov/taskfarm/metrics"
)

// config holds Farm configuration.
type config struct {
	// Workers defines the worker pool size. There is no default: the
	// coordinator must learn the pool size before any dispatch, so
	// WithWorkers is mandatory. A pool without workers is a configuration
	// error reported by New, before any work begins.
	Workers int

	// Logger receives debug-level scheduling events (dispatches, results,
	// terminations, worker lifecycle).
	// Default: zap.NewNop().
	Logger *zap.Logger

	// Metrics constructs the instruments recording scheduling activity.
	// Default: metrics.NewNoopProvider().
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Workers: 0, // must be set via WithWorkers
		Logger:  zap.NewNop(),
		Metrics: metrics.NewNoopProvider(),
	}
}

// validateConfig checks the startup contract: the pool size must be known
// and positive before the farm is constructed.
func validateConfig(cfg *config) error {
	if cfg.Workers < 1 {
		return ErrNoWorkers
	}
	return nil
}
