// Package metrics defines and registers all custom Prometheus metrics for the
// Hirafic marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hirafic"

// BookingsCreatedTotal counts newly created bookings. No per-specialization
// label: specialization is free-form input, so the label set would be unbounded.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingTransitionsTotal counts applied booking status transitions.
// Label:
//   - to: the new status ("Accepted", "Declined", "Completed")
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking status transitions applied, by target status.",
	},
	[]string{"to"},
)

// NotificationsSentTotal counts booking notification emails handed to the mailer.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of booking notification emails sent.",
	},
)

// NotificationErrorsTotal counts failed notification attempts.
// Label:
//   - reason: short description of the failure (e.g. "send_failed")
var NotificationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_errors_total",
		Help:      "Total number of booking notification emails that failed.",
	},
	[]string{"reason"},
)
