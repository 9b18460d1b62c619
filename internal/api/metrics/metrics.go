// Package metrics defines and registers all custom Prometheus metrics for the
// green-path-ai access core. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "greenpath"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "missing_fields", "superseded"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout calls.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// LoginDuration measures how long a login call takes end-to-end, including
// the simulated network delay.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login calls from submission to outcome.",
		Buckets:   prometheus.DefBuckets,
	},
)

// GuardDecisionsTotal counts navigation decisions.
// Label:
//   - action: "render" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route-guard decisions, by action.",
	},
	[]string{"action"},
)

// ActiveContexts tracks the number of live browsing contexts known to the
// session registry.
var ActiveContexts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_contexts",
		Help:      "Current number of browsing contexts holding a session service.",
	},
)
