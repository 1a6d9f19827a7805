package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mercadillo_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes per-request latency in seconds.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "mercadillo_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// VerificationCodesIssued counts codes issued by trigger (register, email_change).
var VerificationCodesIssued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mercadillo_verification_codes_issued_total",
		Help: "Total number of verification codes issued.",
	},
	[]string{"trigger"},
)
