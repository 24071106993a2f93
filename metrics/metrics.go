// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors recorded while comparing
// max-flow solvers.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Keys for solve status labels.
const (
	Fail = "fail"
	Ok   = "ok"
)

// Collectors groups every collector so tests can register a private set.
type Collectors struct {
	SolveDurationSeconds *prometheus.HistogramVec
	SolvesTotal          *prometheus.CounterVec
	AugmentationsTotal   *prometheus.CounterVec
	FlowValue            *prometheus.GaugeVec
	InconsistencyTotal   prometheus.Counter
}

// NewCollectors builds an unregistered set of collectors.
func NewCollectors() *Collectors {
	return &Collectors{
		SolveDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "maxflow_solve_duration_seconds",
			Help: "Wall-clock duration of one max-flow solve call.",
			// 1µs .. ~1s
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 11),
		}, []string{"algorithm"}),
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maxflow_solves_total",
			Help: "Cumulative number of solve calls, by algorithm and status.",
		}, []string{"algorithm", "status"}),
		AugmentationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maxflow_augmentations_total",
			Help: "Cumulative number of augmenting paths applied.",
		}, []string{"algorithm"}),
		FlowValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "maxflow_last_flow_value",
			Help: "Flow value of the most recent successful solve.",
		}, []string{"algorithm"}),
		InconsistencyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maxflow_inconsistency_total",
			Help: "Cumulative number of comparisons where solvers disagreed or returned an infeasible flow.",
		}),
	}
}

// Collectors returns every collector of c, for registration.
func (c *Collectors) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.SolveDurationSeconds,
		c.SolvesTotal,
		c.AugmentationsTotal,
		c.FlowValue,
		c.InconsistencyTotal,
	}
}

// Register registers every collector with reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range c.Collectors() {
		if err := reg.Register(col); err != nil {
			return err
		}
	}

	return nil
}

// Default is the process-wide set, registered with the default registry.
var Default = NewCollectors()

func init() {
	prometheus.MustRegister(Default.Collectors()...)
}
