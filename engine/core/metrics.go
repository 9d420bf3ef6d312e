package core

import "github.com/spaghettifunk/rotor/engine/containers"

const AVG_COUNT = 30

// Metrics keeps a rolling average of batch durations over the last
// AVG_COUNT batches and the throughput of the last full second.
type Metrics struct {
	msTimes       *containers.RingQueue[float64]
	msAvg         float64
	samples       int64
	accumulatedMS float64
	throughput    float64
	total         int64
}

func NewMetrics() *Metrics {
	return &Metrics{
		msTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records a batch of samples that took elapsedSeconds.
func (m *Metrics) Update(elapsedSeconds float64, samples int) {
	// Calculate batch ms average
	batchMS := elapsedSeconds * 1000.0
	if m.msTimes.IsFull() {
		_, _ = m.msTimes.Dequeue()
	}
	_ = m.msTimes.Enqueue(batchMS)

	sum := 0.0
	m.msTimes.Each(func(ms float64) { sum += ms })
	m.msAvg = sum / float64(m.msTimes.Len())

	// Calculate samples per second.
	m.samples += int64(samples)
	m.total += int64(samples)
	m.accumulatedMS += batchMS
	if m.accumulatedMS > 1000 {
		m.throughput = float64(m.samples) * 1000 / m.accumulatedMS
		m.accumulatedMS = 0
		m.samples = 0
	}
}

// Throughput is in samples per second. Until a full second has been
// recorded it is extrapolated from what has been seen so far.
func (m *Metrics) Throughput() float64 {
	if m.throughput == 0 && m.accumulatedMS > 0 {
		return float64(m.samples) * 1000 / m.accumulatedMS
	}
	return m.throughput
}

// BatchTime is the rolling average batch duration in milliseconds.
func (m *Metrics) BatchTime() float64 {
	return m.msAvg
}

func (m *Metrics) Total() int64 {
	return m.total
}
