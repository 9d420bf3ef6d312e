package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	m.Update(0.010, 100)
	m.Update(0.030, 100)

	assert.InDelta(t, 20.0, m.BatchTime(), 1e-9)
	assert.Equal(t, int64(200), m.Total())
	// 200 samples in 40ms, extrapolated to a second.
	assert.InDelta(t, 5000.0, m.Throughput(), 1e-6)

	for i := 0; i < AVG_COUNT; i++ {
		m.Update(0.002, 1)
	}
	// The window only holds the last AVG_COUNT batches.
	assert.InDelta(t, 2.0, m.BatchTime(), 1e-9)
}

func TestMetricsThroughputAfterOneSecond(t *testing.T) {
	m := NewMetrics()
	m.Update(0.6, 300)
	m.Update(0.6, 300)
	assert.InDelta(t, 500.0, m.Throughput(), 1e-6)

	m.Update(0.1, 1000)
	// The last full window stays in effect until the next one completes.
	assert.InDelta(t, 500.0, m.Throughput(), 1e-6)
}

func TestClock(t *testing.T) {
	c := NewClock()
	assert.False(t, c.IsRunning())
	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	assert.True(t, c.IsRunning())
	time.Sleep(5 * time.Millisecond)
	c.Stop()

	assert.False(t, c.IsRunning())
	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)

	c.Update()
	assert.Equal(t, elapsed, c.Elapsed())
}
