// Package metrics defines the custom Prometheus metrics for the e-commerce
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// SignupsTotal counts successful registrations.
// Label:
//   - role: the role granted to the new account ("USER" or "ADMIN")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user registrations, by granted role.",
	},
	[]string{"role"},
)

// SigninsTotal counts sign-in attempts by outcome.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by outcome.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected authentication requests.
// Label:
//   - reason: "validation", "duplicate_email", "unauthorized_admin",
//     "unknown_email", or "incorrect_password"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected sign-up/sign-in requests, by reason.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts signed tokens handed out to clients.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of signed authentication tokens issued.",
	},
)
