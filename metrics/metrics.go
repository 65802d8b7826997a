// SPDX-License-Identifier: MIT
// Package metrics registers the Prometheus counters and histograms that
// observe the cut/dominator pipeline, grounded on the
// prometheus.NewCounter/NewHistogram + DefaultRegisterer style seen in
// the retrieved etalazz-vsa simulator (tfd_total_ops, tfd_s_flush_interval_seconds).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PivotCalls counts Pivot invocations, labeled by strategy
	// ("all_cuts" or "min_cuts").
	PivotCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "graphcuts_pivot_calls_total",
		Help: "Number of Provan-Shier pivot invocations, by strategy.",
	}, []string{"strategy"})

	// CutsEmitted counts source-side partitions emitted by a façade,
	// labeled the same way.
	CutsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "graphcuts_cuts_emitted_total",
		Help: "Number of (s,t) cuts emitted, by strategy.",
	}, []string{"strategy"})

	// DominatorBuildSeconds observes dominator.Build latency.
	DominatorBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphcuts_dominator_build_seconds",
		Help:    "Wall-clock time of dominator.Build calls.",
		Buckets: prometheus.DefBuckets,
	})

	// MaxflowValue observes the value returned by a maxflow computation,
	// useful for spotting degenerate (zero-flow) inputs in a fleet of
	// calls.
	MaxflowValue = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphcuts_maxflow_value",
		Help:    "Max-flow value computed by AllStMinCuts.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
)

func init() {
	prometheus.DefaultRegisterer.MustRegister(PivotCalls, CutsEmitted, DominatorBuildSeconds, MaxflowValue)
}
