package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oauth_http_requests_total",
		Help: "Total number of HTTP requests by route and status code",
	}, []string{"route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oauth_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2.0, 12), // 0.5ms to ~1s
	}, []string{"route"})

	AuthorizeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oauth_authorize_requests_total",
		Help: "Authorization requests by outcome",
	}, []string{"outcome"})

	TokenRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oauth_token_requests_total",
		Help: "Token requests by grant type and outcome",
	}, []string{"grant_type", "outcome"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oauth_rate_limited_requests_total",
		Help: "Requests rejected by the rate limiter",
	})
)

const OutcomeSuccess = "success"

// GrantTypeLabel bounds the grant_type label to known values so arbitrary
// client input cannot create new series.
func GrantTypeLabel(grantType string) string {
	switch grantType {
	case "authorization_code", "refresh_token":
		return grantType
	default:
		return "other"
	}
}
