package taskfarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_AssignComplete(t *testing.T) {
	g := newRegistry(5)

	require.NoError(t, g.assign(1, 0))
	require.NoError(t, g.assign(2, 1))
	require.Equal(t, 2, g.inFlight())

	w, ok := g.assignedWorker(0)
	require.True(t, ok)
	require.Equal(t, 1, w)

	index, err := g.complete(1)
	require.NoError(t, err)
	require.Equal(t, 0, index)
	require.Equal(t, 1, g.inFlight())

	// The index-to-worker side survives completion: it is the audit trace.
	w, ok = g.assignedWorker(0)
	require.True(t, ok)
	require.Equal(t, 1, w)

	// A completed worker can take new work.
	require.NoError(t, g.assign(1, 2))
	require.Equal(t, 2, g.inFlight())
}

func TestRegistry_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *registry) error
	}{
		{
			name: "worker_holding_two_assignments",
			setup: func(g *registry) error {
				if err := g.assign(1, 0); err != nil {
					return err
				}
				return g.assign(1, 1)
			},
		},
		{
			name: "index_assigned_twice",
			setup: func(g *registry) error {
				if err := g.assign(1, 0); err != nil {
					return err
				}
				if _, err := g.complete(1); err != nil {
					return err
				}
				return g.assign(2, 0)
			},
		},
		{
			name: "index_out_of_range",
			setup: func(g *registry) error {
				return g.assign(1, 5)
			},
		},
		{
			name: "negative_index",
			setup: func(g *registry) error {
				return g.assign(1, -1)
			},
		},
		{
			name: "completion_without_assignment",
			setup: func(g *registry) error {
				_, err := g.complete(3)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup(newRegistry(5))
			require.ErrorIs(t, err, ErrScheduleCorrupted)
		})
	}
}

func TestRegistry_AssignedWorker_Unassigned(t *testing.T) {
	g := newRegistry(3)

	_, ok := g.assignedWorker(1)
	require.False(t, ok)
	_, ok = g.assignedWorker(-1)
	require.False(t, ok)
	_, ok = g.assignedWorker(3)
	require.False(t, ok)
}
