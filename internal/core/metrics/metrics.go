// Package metrics declares the Prometheus collectors of the calculator.
// Collectors register with the default registry and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// HTTPRequests counts outbound HTTP requests per host.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "freight_emissions",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total outbound HTTP requests by host and outcome.",
}, []string{"host", "outcome"})

// HTTPDuration observes outbound HTTP latency per host.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "freight_emissions",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Outbound HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"host"})

// TokenGrants counts calls to the identity endpoint by grant type.
var TokenGrants = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "freight_emissions",
	Subsystem: "auth",
	Name:      "token_grants_total",
	Help:      "Total token grant requests by grant type and outcome.",
}, []string{"grant", "outcome"})

// LegResults counts computed legs by transport mode.
var LegResults = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "freight_emissions",
	Subsystem: "legs",
	Name:      "results_total",
	Help:      "Total leg computations by mode and outcome.",
}, []string{"mode", "outcome"})

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
