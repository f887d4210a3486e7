// Package promstats exports scenepool activity as Prometheus metrics.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/peczenyj/scenepool"
)

// DefaultNamespace is used when NewCollector receives an empty namespace.
const DefaultNamespace = "scenepool"

var _ scenepool.Recorder = (*Collector)(nil)

// Collector is a scenepool.Recorder backed by Prometheus instruments.
// Every series is labeled by pool name, so one Collector can serve many pools.
type Collector struct {
	createdTotal    *prometheus.CounterVec
	generatedTotal  *prometheus.CounterVec
	releasedTotal   *prometheus.CounterVec
	discardedTotal  *prometheus.CounterVec
	violationsTotal *prometheus.CounterVec
	outstanding     *prometheus.GaugeVec
	idle            *prometheus.GaugeVec
}

// NewCollector constructs the instruments and registers them with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	if namespace == "" {
		namespace = DefaultNamespace
	}

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(
			prometheus.CounterOpts{ //nolint:exhaustruct
				Namespace: namespace,
				Subsystem: "pool",
				Name:      name,
				Help:      help,
			},
			append([]string{"pool"}, labels...),
		)
	}

	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{ //nolint:exhaustruct
				Namespace: namespace,
				Subsystem: "pool",
				Name:      name,
				Help:      help,
			},
			[]string{"pool"},
		)
	}

	c := &Collector{
		createdTotal:    counter("created_total", "Total number of instances created by the environment."),
		generatedTotal:  counter("generated_total", "Total number of Generate calls."),
		releasedTotal:   counter("released_total", "Total number of accepted releases."),
		discardedTotal:  counter("discarded_total", "Total number of instances dropped because the idle store was full or cleared."),
		violationsTotal: counter("violations_total", "Total number of lifecycle violations, labeled by kind.", "kind"),
		outstanding:     gauge("outstanding", "Number of instances handed out and not yet released."),
		idle:            gauge("idle", "Number of instances waiting in the idle store."),
	}

	reg.MustRegister(
		c.createdTotal,
		c.generatedTotal,
		c.releasedTotal,
		c.discardedTotal,
		c.violationsTotal,
		c.outstanding,
		c.idle,
	)

	return c
}

// ObserveCreate implements scenepool.Recorder.
func (c *Collector) ObserveCreate(pool string) {
	if c == nil {
		return
	}

	c.createdTotal.WithLabelValues(pool).Inc()
}

// ObserveGenerate implements scenepool.Recorder.
func (c *Collector) ObserveGenerate(pool string) {
	if c == nil {
		return
	}

	c.generatedTotal.WithLabelValues(pool).Inc()
}

// ObserveRelease implements scenepool.Recorder.
func (c *Collector) ObserveRelease(pool string) {
	if c == nil {
		return
	}

	c.releasedTotal.WithLabelValues(pool).Inc()
}

// ObserveDiscard implements scenepool.Recorder.
func (c *Collector) ObserveDiscard(pool string) {
	if c == nil {
		return
	}

	c.discardedTotal.WithLabelValues(pool).Inc()
}

// ObserveViolation implements scenepool.Recorder.
func (c *Collector) ObserveViolation(pool string, violation scenepool.Violation) {
	if c == nil {
		return
	}

	c.violationsTotal.WithLabelValues(pool, string(violation)).Inc()
}

// ObserveSizes implements scenepool.Recorder.
func (c *Collector) ObserveSizes(pool string, outstanding, idle int) {
	if c == nil {
		return
	}

	c.outstanding.WithLabelValues(pool).Set(float64(outstanding))
	c.idle.WithLabelValues(pool).Set(float64(idle))
}
