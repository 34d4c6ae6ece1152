package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicProvider_ReusesInstrumentsByName(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter("items", WithDescription("items"), WithUnit("1"))
	c2 := p.Counter("items")
	require.Same(t, c1, c2)

	u1 := p.UpDownCounter("active")
	u2 := p.UpDownCounter("active")
	require.Same(t, u1, u2)

	h1 := p.Histogram("duration", WithUnit("seconds"))
	h2 := p.Histogram("duration")
	require.Same(t, h1, h2)

	cfg, ok := p.Describe("items")
	require.True(t, ok)
	require.Equal(t, "items", cfg.Description)
	require.Equal(t, "1", cfg.Unit)

	_, ok = p.Describe("unknown")
	require.False(t, ok)
}

func TestBasicCounter_Add(t *testing.T) {
	var c BasicCounter
	c.Add(3)
	c.Add(2)
	require.Equal(t, int64(5), c.Value())
}

func TestBasicUpDownCounter_Add(t *testing.T) {
	var c BasicUpDownCounter
	c.Add(4)
	c.Add(-3)
	require.Equal(t, int64(1), c.Value())
	c.Add(-1)
	require.Zero(t, c.Value())
}

func TestBasicHistogram_Snapshot(t *testing.T) {
	var h BasicHistogram

	count, sum, minV, maxV := h.Snapshot()
	require.Zero(t, count)
	require.Zero(t, sum)
	require.Zero(t, minV)
	require.Zero(t, maxV)

	h.Record(2.5)
	h.Record(0.5)
	h.Record(1.0)

	count, sum, minV, maxV = h.Snapshot()
	require.Equal(t, int64(3), count)
	require.InDelta(t, 4.0, sum, 1e-9)
	require.InDelta(t, 0.5, minV, 1e-9)
	require.InDelta(t, 2.5, maxV, 1e-9)
}

func TestBasicProvider_ConcurrentUse(t *testing.T) {
	p := NewBasicProvider()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Counter("shared").Add(1)
			p.UpDownCounter("updown").Add(1)
			p.Histogram("hist").Record(1)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(16), p.Counter("shared").(*BasicCounter).Value())
	require.Equal(t, int64(16), p.UpDownCounter("updown").(*BasicUpDownCounter).Value())
	count, _, _, _ := p.Histogram("hist").(*BasicHistogram).Snapshot()
	require.Equal(t, int64(16), count)
}

func TestNoopProvider(t *testing.T) {
	p := NewNoopProvider()

	// No-op instruments must be callable without effect.
	p.Counter("c").Add(1)
	p.UpDownCounter("u").Add(-1)
	p.Histogram("h").Record(1.5)
}
