// Package metrics defines and registers all custom Prometheus metrics for
// the MedConnect portal API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medconnect"

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts successful login submissions.
// Label:
//   - role: "patient" or "doctor"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sessions established via login.",
	},
	[]string{"role"},
)

// RegistrationsTotal counts successful signup submissions.
// Label:
//   - role: "patient" or "doctor"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of sessions established via registration.",
	},
	[]string{"role"},
)

// LogoutsTotal counts logout requests that reached the session service,
// including idempotent logouts of already-anonymous sessions.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout requests processed.",
	},
)

// SubmissionsRejectedTotal counts submissions rejected by the re-entrancy
// guard while an earlier submission for the same submitter was still pending.
var SubmissionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of duplicate submissions rejected while one was in flight.",
	},
)

// ActiveSessions tracks the current number of live sessions in the store.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Current number of authenticated sessions held in memory.",
	},
)

// ── Guard metrics ────────────────────────────────────────────────────────────

// GuardRedirectsTotal counts navigation-guard redirects.
// Label:
//   - reason: "anonymous", "role_mismatch", or "unknown_path"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of requests redirected by the navigation guard, by reason.",
	},
	[]string{"reason"},
)

// ── Form metrics ─────────────────────────────────────────────────────────────

// ValidationFailuresTotal counts submissions rejected by form validation.
// Label:
//   - form: "login" or "signup"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected with field errors.",
	},
	[]string{"form"},
)

// ── Picture metrics ──────────────────────────────────────────────────────────

// PictureConversionsTotal counts profile-picture conversions.
// Label:
//   - result: "ok" or "error"
var PictureConversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "picture_conversions_total",
		Help:      "Total number of profile picture conversions, by result.",
	},
	[]string{"result"},
)

// PictureConversionDuration measures how long a single conversion takes from
// dequeue to the draft-store write.
var PictureConversionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "picture_conversion_duration_seconds",
		Help:      "Duration of profile picture conversion from dequeue to draft write.",
		Buckets:   prometheus.DefBuckets,
	},
)
