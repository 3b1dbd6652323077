// Package metrics defines and registers all custom Prometheus metrics for the
// report dashboard service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reports"

// ── Query metrics ─────────────────────────────────────────────────────────────

// QueriesTotal counts list, query and stats calls.
// Labels:
//   - category: report category (e.g. "timesheet")
//   - operation: "list", "query", "stats" or "download"
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of report queries, by category and operation.",
	},
	[]string{"category", "operation"},
)

// QueryErrorsTotal counts queries that failed.
// Labels:
//   - category: report category
//   - reason: short description of the failure (e.g. "load_failed", "invalid_query")
var QueryErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "query_errors_total",
		Help:      "Total number of report queries that failed.",
	},
	[]string{"category", "reason"},
)

// QueryDuration measures how long a query takes from load to result.
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of report queries including storage load.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"category"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StoreFallbacksTotal counts reads served from seed data.
// Labels:
//   - category: report category
//   - reason: "absent", "empty" or "corrupt"
var StoreFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fallbacks_total",
		Help:      "Total number of category reads that fell back to seed data.",
	},
	[]string{"category", "reason"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts export requests.
// Labels:
//   - category: report category
//   - format: "csv", "excel" or "pdf"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of report export requests, by category and format.",
	},
	[]string{"category", "format"},
)

// SchedulesTotal counts accepted schedule requests.
// Label:
//   - cadence: "daily", "weekly" or "monthly"
var SchedulesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedules_total",
		Help:      "Total number of scheduled report requests, by cadence.",
	},
	[]string{"cadence"},
)
