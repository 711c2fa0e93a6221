// Package stress implements the rolling stress signal that drives strategy
// selection, self-heal eligibility, and error propagation, plus the
// per-component Health record.
package stress

import (
	"math"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultSampleCapacity = 100

// Monitor is a bounded FIFO of recent operation-cost samples with a
// continuously-recomputed arithmetic mean. It is process-wide (or
// per-resolver-instance) shared state; AddSample and Current are each
// individually atomic.
type Monitor struct {
	mu       sync.RWMutex
	samples  []float64
	head     int
	size     int
	capacity int

	gauge prometheus.Gauge
}

// MonitorOption configures a Monitor at construction time.
type MonitorOption func(*monitorConfig)

type monitorConfig struct {
	capacity int
	registry prometheus.Registerer
}

// WithSampleCapacity overrides the default ring-buffer capacity of 100.
// Production code should leave this at the default; tests use a small
// capacity to observe eviction without pushing 100 samples.
func WithSampleCapacity(n int) MonitorOption {
	return func(c *monitorConfig) { c.capacity = n }
}

// WithMetrics registers a gauge tracking the monitor's current stress value
// against the given Prometheus registerer.
func WithMetrics(reg prometheus.Registerer) MonitorOption {
	return func(c *monitorConfig) { c.registry = reg }
}

// NewMonitor constructs a Monitor ready to accept samples.
func NewMonitor(opts ...MonitorOption) *Monitor {
	cfg := monitorConfig{capacity: defaultSampleCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Monitor{
		samples:  make([]float64, cfg.capacity),
		capacity: cfg.capacity,
	}
	if cfg.registry != nil {
		m.gauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "semverx",
			Subsystem: "stress",
			Name:      "current",
			Help:      "Current arithmetic-mean stress sample value.",
		})
		cfg.registry.MustRegister(m.gauge)
	}
	return m
}

// AddSample pushes x onto the ring buffer, evicting the oldest sample once
// full.
func (m *Monitor) AddSample(x float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[m.head] = x
	m.head = (m.head + 1) % m.capacity
	if m.size < m.capacity {
		m.size++
	}
	if m.gauge != nil {
		m.gauge.Set(m.currentLocked())
	}
}

// Current returns the arithmetic mean of the held samples, or 0 if empty.
func (m *Monitor) Current() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocked()
}

func (m *Monitor) currentLocked() float64 {
	if m.size == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < m.size; i++ {
		sum += m.samples[i]
	}
	return sum / float64(m.size)
}

// FromConflict maps a conflict count to a stress sample.
func FromConflict(count int) float64 { return float64(count) * 2 }

// FromCycle maps a cycle size to a stress sample.
func FromCycle(size int) float64 { return math.Pow(float64(size), 1.5) }

// FromComplexity maps an operation's complexity and iteration count to a
// stress sample. iterations must be >= 1; an iterations of 0 or 1
// contributes zero stress (ln(1) == 0).
func FromComplexity(complexity float64, iterations int) float64 {
	if iterations < 1 {
		iterations = 1
	}
	return complexity * math.Log(float64(iterations))
}
