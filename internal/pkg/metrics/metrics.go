// Package metrics exposes the parcel service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "parcel"

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// Collector is a prometheus.Collector for parcel creation, status
// transitions and the transition backlog.
type Collector struct {
	created            *prometheus.CounterVec
	transitions        *prometheus.CounterVec
	awaitingTransition *prometheus.GaugeVec
}

// NewCollector returns a new Collector. It must be registered before its
// values are exported.
func NewCollector() *Collector {
	return &Collector{
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "created_total",
				Help:      "The number of parcels created, by delivery service.",
			}, []string{"service"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "status_transitions_total",
				Help:      "The number of status transition requests, by outcome.",
			}, []string{"from", "to", "outcome"},
		),
		awaitingTransition: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "awaiting_transition",
				Help:      "The number of parcels whose launch or arrival date has passed, by status.",
			}, []string{"status"},
		),
	}
}

// ParcelCreated counts a created parcel.
func (c *Collector) ParcelCreated(service string) {
	c.created.WithLabelValues(service).Inc()
}

// TransitionDecided counts a validated status transition request.
func (c *Collector) TransitionDecided(from, to string, accepted bool) {
	outcome := outcomeRejected
	if accepted {
		outcome = outcomeAccepted
	}
	c.transitions.WithLabelValues(from, to, outcome).Inc()
}

// SetAwaitingTransition records the backlog of status.
func (c *Collector) SetAwaitingTransition(status string, count int) {
	c.awaitingTransition.WithLabelValues(status).Set(float64(count))
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.created.Describe(ch)
	c.transitions.Describe(ch)
	c.awaitingTransition.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.created.Collect(ch)
	c.transitions.Collect(ch)
	c.awaitingTransition.Collect(ch)
}
