// Package metrics holds the Prometheus collectors for outgoing API calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records API request counts and latency by endpoint, method and
// status code. Transport failures are recorded with code "error".
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shopauth_api_requests_total",
			Help: "Total number of API requests issued by the client",
		}, []string{"endpoint", "method", "code"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopauth_api_request_duration_seconds",
			Help:    "API request latency as seen by the client",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
}

// ObserveRequest records one finished request. status 0 means no response
// was received.
func (m *Metrics) ObserveRequest(endpoint, method string, status int, d time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.Requests.WithLabelValues(endpoint, method, code).Inc()
	m.Duration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}
