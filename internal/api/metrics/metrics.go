// Package metrics defines and registers all custom Prometheus metrics for
// the booking API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - tier: "base" or "premium"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered, by tier.",
	},
	[]string{"tier"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts newly booked reservations.
// Label:
//   - cabin: "premium" or "normal" class of service at booking time
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations booked, by cabin.",
	},
	[]string{"cabin"},
)

// ConfirmationsTotal counts reservations that completed the confirmation step.
var ConfirmationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmations_total",
		Help:      "Total number of reservation confirmations recorded.",
	},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreSaveDuration measures a full-collection rewrite of one data file.
// Label:
//   - entity: "users" or "reservations"
var StoreSaveDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_save_duration_seconds",
		Help:      "Duration of whole-collection data file rewrites.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"entity"},
)

// StoreRowsSkipped counts malformed rows dropped during a load.
// Label:
//   - entity: "users" or "reservations"
var StoreRowsSkipped = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_rows_skipped_total",
		Help:      "Total number of malformed data file rows skipped on load.",
	},
	[]string{"entity"},
)
