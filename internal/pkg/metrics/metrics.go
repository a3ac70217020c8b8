// Package metrics defines and registers the custom Prometheus metrics of the
// marketplace. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Identity metrics ──────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and signup calls.
// Labels:
//   - action: "login" or "signup"
//   - result: "success", "invalid_credentials", "email_registered", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of simulated login and signup attempts.",
	},
	[]string{"action", "result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// DraftsTotal tracks the lifecycle of booking drafts.
// Label:
//   - outcome: "captured", "resumed", "discarded"
var DraftsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_drafts_total",
		Help:      "Booking drafts captured before authentication and what became of them.",
	},
	[]string{"outcome"},
)

// BookingsCreatedTotal counts finalized bookings.
// Label:
//   - payment_method: "money" or "points"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by payment method.",
	},
	[]string{"payment_method"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsSettledTotal counts simulated payments that reached a terminal state.
// Label:
//   - outcome: "succeeded" or "failed"
var PaymentsSettledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_settled_total",
		Help:      "Total number of simulated mobile-money payments settled, by outcome.",
	},
	[]string{"outcome"},
)

// PaymentsQueueDepth tracks settlements waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PaymentsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payments_queue_depth",
		Help:      "Current number of settlements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// PaymentSettlementDuration measures a settlement from submission to outcome,
// including the simulated round trip.
var PaymentSettlementDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_settlement_duration_seconds",
		Help:      "Duration of payment settlement from submission to terminal state.",
		Buckets:   []float64{.5, 1, 2, 3, 4, 5, 10},
	},
	[]string{"outcome"},
)

// ActivePaymentAttempts is the number of payment dialogs currently open.
var ActivePaymentAttempts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payment_attempts_active",
		Help:      "Number of payment dialogs currently held in memory.",
	},
)
