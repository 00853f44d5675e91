// Package metrics defines and registers all custom Prometheus metrics for
// the exhibitor portal. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts credential exchanges against the upstream backend.
// Labels:
//   - role: "exhibitor" or "visitor"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and outcome.",
	},
	[]string{"role", "outcome"},
)

// SessionsDiscardedTotal counts stored sessions rejected at resolution time.
// Label:
//   - reason: "malformed", "bad_role", "expired"
var SessionsDiscardedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_discarded_total",
		Help:      "Total number of stored sessions discarded as invalid on load.",
	},
	[]string{"reason"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures each backend call end-to-end.
// Labels:
//   - endpoint: the upstream path (e.g. "/user/get-stall-details")
//   - outcome: "ok", "upstream_error", "network_error", "read_error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the event-management backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)

// ── Screen metrics ────────────────────────────────────────────────────────────

// ScreenFetchesTotal counts data fetches per screen.
// Label:
//   - screen: "catalog", "bookings", "exhibitors", "visitors", "leads",
//     "products", "services", "gallery", "profile"
var ScreenFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "screen_fetches_total",
		Help:      "Total number of screen data fetches.",
	},
	[]string{"screen"},
)

// StaleRefreshesTotal counts catalog refresh completions discarded because a
// newer refresh had already superseded them.
var StaleRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_refreshes_total",
		Help:      "Total number of catalog refresh results discarded as stale.",
	},
)

// ── QR upload metrics ─────────────────────────────────────────────────────────

// QRUploadsTotal counts QR artifact uploads after profile edits.
// Label:
//   - outcome: "success", "retried", "failed"
var QRUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_uploads_total",
		Help:      "Total number of QR code uploads following profile updates.",
	},
	[]string{"outcome"},
)
