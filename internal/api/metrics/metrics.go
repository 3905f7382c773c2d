// Package metrics defines all custom Prometheus metrics for the WheelTrip
// assistance API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wheeltrip"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "client" or "assistant"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
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

// TokenChecksTotal counts token validation requests.
// Label:
//   - result: "valid" or "invalid"
var TokenChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_checks_total",
		Help:      "Total number of token validation requests, by result.",
	},
	[]string{"result"},
)

// ── Trip metrics ──────────────────────────────────────────────────────────────

// TripsCreatedTotal counts newly created trips.
var TripsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_created_total",
		Help:      "Total number of trips created.",
	},
)

// ── Itinerary metrics ─────────────────────────────────────────────────────────

// ItineraryCacheTotal counts itinerary cache lookups.
// Label:
//   - result: "hit" or "miss"
var ItineraryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "itinerary_cache_total",
		Help:      "Total number of itinerary cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
