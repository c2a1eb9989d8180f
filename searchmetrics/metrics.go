// Package searchmetrics exports astar search statistics as Prometheus metrics.
package searchmetrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bestfirst/astar"
)

// Observer is an astar.Observer backed by Prometheus collectors.
// It is safe for concurrent searches; counters aggregate over all of them.
type Observer struct {
	expansions prometheus.Counter
	pushes     prometheus.Counter
	reopens    prometheus.Counter
	staleSkips prometheus.Counter
	searches   *prometheus.CounterVec
	duration   prometheus.Histogram
	planCost   prometheus.Gauge
}

var _ astar.Observer = (*Observer)(nil)

// NewObserver creates the collectors under namespace and registers them
// with reg. A nil reg registers with prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_expansions_total",
			Help:      "Total number of states expanded",
		}),
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_pushes_total",
			Help:      "Total number of frontier insertions",
		}),
		reopens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_reopens_total",
			Help:      "Total number of closed states reopened by a cheaper path",
		}),
		staleSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_stale_skips_total",
			Help:      "Total number of superseded frontier entries discarded",
		}),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of completed searches by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		planCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_plan_cost",
			Help:      "Cost of the most recent plan found",
		}),
	}

	for _, c := range []prometheus.Collector{
		o.expansions, o.pushes, o.reopens, o.staleSkips, o.searches, o.duration, o.planCost,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("searchmetrics: register: %w", err)
		}
	}

	return o, nil
}

// Expanded counts one expansion.
func (o *Observer) Expanded(_, _ float64) { o.expansions.Inc() }

// Pushed counts one frontier insertion and, if reopened, one reopening.
func (o *Observer) Pushed(_, _ float64, reopened bool) {
	o.pushes.Inc()
	if reopened {
		o.reopens.Inc()
	}
}

// Finished records the outcome, the duration and the stale skips of a search.
func (o *Observer) Finished(stats astar.Stats, elapsed time.Duration, outcome astar.Outcome) {
	o.staleSkips.Add(float64(stats.StaleSkipped))
	o.searches.WithLabelValues(outcome.String()).Inc()
	o.duration.Observe(elapsed.Seconds())
}

// ObservePlan sets the plan cost gauge from a found result.
// The observer hook carries no plan, so callers report it here.
func (o *Observer) ObservePlan(cost float64) { o.planCost.Set(cost) }
