// Package metrics defines and registers all custom Prometheus metrics for
// the accounts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// RegistrationsTotal counts successfully persisted registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users successfully registered.",
	},
)

// RegistrationErrorsTotal counts failed registration attempts.
// Label:
//   - reason: "validation", "conflict", "credentials", or "store"
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_errors_total",
		Help:      "Total number of registration attempts that failed, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "validation", "unknown_email", "bad_password", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuditEntriesTotal counts registration audit-log writes.
// Label:
//   - result: "ok", "error", or "dropped" (shard buffer full)
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of registration audit entries, by delivery result.",
	},
	[]string{"result"},
)

// TokenIssueFailuresTotal counts token-pair issuance failures during the
// credential-sealing pass. Issuance failure never aborts the save, so this
// is the only signal that users were created without tokens.
var TokenIssueFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_issue_failures_total",
		Help:      "Total number of JWT pair issuance failures at registration.",
	},
)
