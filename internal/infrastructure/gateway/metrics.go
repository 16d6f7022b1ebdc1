// Gateway metrics. This file is the single source of truth for metric
// names, labels, and help strings; everything registers with the default
// Prometheus registry at package init.
package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// requestsTotal counts backend calls by operation and outcome.
// Labels:
//   - operation: logical call name (e.g. "projects.update", "auth.login")
//   - outcome: "ok", "rejected", "unauthorized", "unreachable", "malformed"
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of backend calls made through the gateway.",
	},
	[]string{"operation", "outcome"},
)

// requestDuration measures a call end-to-end, including body decode.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of backend calls from request build to envelope decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// authFailuresTotal counts credential rejections that triggered the global
// scrub-and-redirect path.
var authFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_auth_failures_total",
		Help:      "Total number of 401 responses that forced an auto-logout.",
	},
)
