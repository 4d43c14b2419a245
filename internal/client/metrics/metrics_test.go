package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("/auth/login/", "POST", 200, 20*time.Millisecond)
	m.ObserveRequest("/auth/login/", "POST", 200, 30*time.Millisecond)
	m.ObserveRequest("/auth/login/", "POST", 400, time.Millisecond)
	m.ObserveRequest("/auth/logout/", "POST", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/auth/login/", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/auth/login/", "POST", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/auth/logout/", "POST", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveRequest("/users/profile/", "GET", 200, time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "shopauth_api_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
