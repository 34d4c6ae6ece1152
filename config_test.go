package taskfarm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ygrebnov/taskfarm/metrics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	require.Zero(t, cfg.Workers)
	require.NotNil(t, cfg.Logger)
	require.NotNil(t, cfg.Metrics)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr error
	}{
		{name: "unset", workers: 0, wantErr: ErrNoWorkers},
		{name: "negative", workers: -1, wantErr: ErrNoWorkers},
		{name: "single_worker", workers: 1},
		{name: "large_pool", workers: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Workers = tt.workers

			err := validateConfig(&cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOptions_Apply(t *testing.T) {
	logger := zap.NewExample()
	provider := metrics.NewBasicProvider()

	cfg := defaultConfig()
	for _, opt := range []Option{
		WithWorkers(5),
		WithLogger(logger),
		WithMetrics(provider),
	} {
		require.NoError(t, opt(&cfg))
	}

	require.Equal(t, 5, cfg.Workers)
	require.Same(t, logger, cfg.Logger)
	require.Equal(t, provider, cfg.Metrics)
}

func TestNew_SkipsNilOptions(t *testing.T) {
	f, err := New[int, int](context.Background(), WithWorkers(2), nil)
	require.NoError(t, err)
	require.NotNil(t, f)
}
