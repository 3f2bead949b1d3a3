// Package metrics defines and registers all custom Prometheus metrics for the
// personal-account API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account"

// RegistrationsStartedTotal counts successful first registration steps, i.e.
// intermediate tokens issued.
var RegistrationsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_started_total",
		Help:      "Total number of successful first registration steps.",
	},
)

// RegistrationsCompletedTotal counts finalized accounts.
var RegistrationsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_completed_total",
		Help:      "Total number of accounts created by the second registration step.",
	},
)

// RegistrationFailuresTotal counts failed registration attempts.
// Label:
//   - reason: "email_taken", "invalid_token", "wrong_phase", "not_started", or "internal"
var RegistrationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_failures_total",
		Help:      "Total number of failed registration steps, by reason.",
	},
	[]string{"reason"},
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

// SessionValidationsTotal counts explicit /auth/validate checks.
// Label:
//   - result: "valid" or "invalid"
var SessionValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_validations_total",
		Help:      "Total number of session validation checks, by result.",
	},
	[]string{"result"},
)

// PendingEvictionsTotal counts pending registrations removed by the
// in-process store's expiry sweep. The Redis store expires entries natively
// and never increments this.
var PendingEvictionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pending_evictions_total",
		Help:      "Total number of expired pending registrations swept from the in-process store.",
	},
)
