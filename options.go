package taskfarm

import (
	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/ygrebnov/taskfarm/metrics"
)

// Option configures a Farm. Use New(ctx, opts...) to construct a Farm via
// options. Options return an error on invalid input instead of panicking.
type Option func(*config) error

// WithWorkers sets the worker pool size (must be > 0). This option is
// mandatory: the scheduler needs the pool size before the first dispatch.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithWorkers requires n > 0"))
		}
		cfg.Workers = n
		return nil
	}
}

// WithLogger sets the logger receiving debug-level scheduling events.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.Logger = l
		return nil
	}
}

// WithMetrics sets the provider constructing the instruments that record
// scheduling activity (items dispatched/completed, workers active, compute
// duration).
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
